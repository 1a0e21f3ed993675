package service

import (
	"context"
	"fmt"
	"time"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	repo      OrderRepository
	menu      MenuReader
	carts     CartStore
	publisher EventPublisher
	qr        QRGenerator
	taxRate   decimal.Decimal
	baseURL   string
	newNumber func() string
}

func NewOrderService(repo OrderRepository, menu MenuReader, carts CartStore, publisher EventPublisher, qr QRGenerator, taxRate decimal.Decimal, baseURL string) *OrderService {
	return &OrderService{
		repo:      repo,
		menu:      menu,
		carts:     carts,
		publisher: publisher,
		qr:        qr,
		taxRate:   taxRate,
		baseURL:   baseURL,
		newNumber: NewOrderNumber,
	}
}

// WithNumberGenerator replaces the order number source.
func (s *OrderService) WithNumberGenerator(newNumber func() string) *OrderService {
	s.newNumber = newNumber
	return s
}

// PlaceOrder turns the cart into an order with status new. Every line is
// re-priced against the catalog and must have its required options; the
// resulting prices and selections are frozen onto the order lines. Header
// and lines are persisted atomically by the repository.
func (s *OrderService) PlaceOrder(ctx context.Context, cart *domain.Cart, req domain.PlaceOrderRequest) (*domain.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !req.OrderType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOrderType, req.OrderType)
	}

	items := make(map[string]*domain.MenuItem)
	priced := make([]domain.CartLine, 0, len(cart.Lines))
	lines := make([]domain.OrderLine, 0, len(cart.Lines))

	for _, cartLine := range cart.Lines {
		item, ok := items[cartLine.MenuItemID]
		if !ok {
			var err error
			item, err = s.menu.GetMenuItem(ctx, cartLine.MenuItemID)
			if err != nil {
				return nil, err
			}
			items[cartLine.MenuItemID] = item
		}
		if !item.Available {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemUnavailable, item.Name)
		}
		if err := ValidateRequired(item, cartLine.SelectedOptions); err != nil {
			return nil, err
		}
		price, err := PriceLine(item, cartLine.Quantity, cartLine.SelectedOptions, cartLine.SelectedAddOns)
		if err != nil {
			return nil, err
		}

		cartLine.UnitPrice = price.UnitPrice
		cartLine.LineTotal = price.LineTotal
		priced = append(priced, cartLine)

		lines = append(lines, domain.OrderLine{
			MenuItemID: item.ID,
			ItemName:   item.Name,
			Quantity:   cartLine.Quantity,
			UnitPrice:  price.UnitPrice,
			LineTotal:  price.LineTotal,
			Selections: price.Selections,
		})
	}

	totals := ComputeTotals(priced, s.taxRate)
	order := &domain.Order{
		OrderNumber:   s.newNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		OrderType:     req.OrderType,
		Status:        domain.OrderNew,
		Subtotal:      totals.Subtotal,
		TaxAmount:     totals.Tax,
		TotalAmount:   totals.Total,
		Notes:         req.Notes,
		Lines:         lines,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	log.Info().
		Str("order_number", order.OrderNumber).
		Str("order_type", string(order.OrderType)).
		Int("lines", len(order.Lines)).
		Str("total", order.TotalAmount.StringFixed(2)).
		Msg("order placed")

	s.publish(ctx, orderEvent(domain.EventOrderPlaced, order, ""))
	return order, nil
}

// Checkout places an order from a stored cart and clears the cart on success.
func (s *OrderService) Checkout(ctx context.Context, cartID string, req domain.PlaceOrderRequest) (*domain.Order, error) {
	if err := checkCartID(cartID); err != nil {
		return nil, err
	}
	cart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	order, err := s.PlaceOrder(ctx, cart, req)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, cartID); err != nil {
		log.Error().Err(err).Str("cart_id", cartID).Str("order_number", order.OrderNumber).Msg("order placed but cart not cleared")
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, orderNumber)
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, filter.Status)
	}
	if filter.OrderType != "" && !filter.OrderType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOrderType, filter.OrderType)
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrValidation)
	}
	return s.repo.ListOrders(ctx, filter)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}

	order, err := s.repo.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: order %s cannot go from %s to %s", domain.ErrInvalidTransition, orderNumber, order.Status, status)
	}

	if err := s.repo.UpdateOrderStatus(ctx, orderNumber, order.Status, status); err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = status
	order.UpdatedAt = time.Now().UTC()

	log.Info().Str("order_number", orderNumber).Str("from", string(previous)).Str("to", string(status)).Msg("order status changed")
	s.publish(ctx, orderEvent(domain.EventOrderStatusChanged, order, previous))
	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, orderNumber string) ([]byte, error) {
	order, err := s.repo.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(fmt.Sprintf("%s/orders/%s", s.baseURL, order.OrderNumber))
}

func (s *OrderService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if event.EventID == "" {
		event.EventID = domain.NewEventID()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("key", event.Key()).Msg("failed to publish event")
	}
}

func orderEvent(eventType string, order *domain.Order, previous domain.OrderStatus) domain.Event {
	items := make([]domain.EventItem, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, domain.EventItem{
			MenuItemID: line.MenuItemID,
			Name:       line.ItemName,
			Quantity:   line.Quantity,
		})
	}
	return domain.Event{
		Type:           eventType,
		OrderNumber:    order.OrderNumber,
		OrderType:      string(order.OrderType),
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		TotalAmount:    order.TotalAmount,
		Items:          items,
		Timestamp:      time.Now().UTC(),
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
