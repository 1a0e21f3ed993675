package storage

import (
	"context"
	"fmt"
	"strings"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/lib/pq"
)

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone, order_type, status,
	subtotal, tax_amount, total_amount, notes, created_at, updated_at`

const orderLineColumns = `id, order_id, menu_item_id, item_name, quantity, unit_price, line_total, selections`

// CreateOrder writes the header and every line in one transaction. Either
// the whole order becomes visible or none of it does.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO orders (order_number, customer_name, customer_email, customer_phone, order_type, status,
			subtotal, tax_amount, total_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.OrderType, order.Status,
		order.Subtotal, order.TaxAmount, order.TotalAmount, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return classify(err)
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		if err := tx.QueryRowxContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, item_name, quantity, unit_price, line_total, selections)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			line.OrderID, line.MenuItemID, line.ItemName, line.Quantity, line.UnitPrice, line.LineTotal, line.Selections,
		).Scan(&line.ID); err != nil {
			return fmt.Errorf("order %s line %d: %w", order.OrderNumber, i+1, classify(err))
		}
	}

	return classify(tx.Commit())
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var order domain.Order
	if err := r.DB.GetContext(ctx, &order,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber); err != nil {
		return nil, classify(err)
	}

	lines := []domain.OrderLine{}
	if err := r.DB.SelectContext(ctx, &lines,
		`SELECT `+orderLineColumns+` FROM order_items WHERE order_id = $1 ORDER BY item_name, id`, order.ID); err != nil {
		return nil, classify(err)
	}
	order.Lines = lines
	return &order, nil
}

// ListOrders returns the newest orders first, each with its lines.
func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.OrderType != "" {
		args = append(args, filter.OrderType)
		where = append(where, fmt.Sprintf("order_type = $%d", len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	orders := []domain.Order{}
	if err := r.DB.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, classify(err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Lines = []domain.OrderLine{}
	}

	var lines []domain.OrderLine
	if err := r.DB.SelectContext(ctx, &lines,
		`SELECT `+orderLineColumns+` FROM order_items WHERE order_id = ANY($1) ORDER BY item_name, id`, pq.Array(ids)); err != nil {
		return nil, classify(err)
	}
	for _, line := range lines {
		i := index[line.OrderID]
		orders[i].Lines = append(orders[i].Lines, line)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderNumber string, from, to domain.OrderStatus) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = now()
		WHERE order_number = $2 AND status = $3`, to, orderNumber, from)
	if err != nil {
		return classify(err)
	}
	return r.checkSwapped(ctx, result, `SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)`, orderNumber)
}
