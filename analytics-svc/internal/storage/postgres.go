package storage

import (
	"context"
	"time"

	"savory-delights/analytics-svc/internal/domain"

	"github.com/jmoiron/sqlx"
)

// PostgresLedger answers dashboard questions straight from the restaurant
// tables. It is the fallback when the Redis counters are missing.
type PostgresLedger struct {
	DB      *sqlx.DB
	Timeout time.Duration
}

func NewPostgresLedger(db *sqlx.DB, timeout time.Duration) *PostgresLedger {
	return &PostgresLedger{DB: db, Timeout: timeout}
}

func (l *PostgresLedger) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.Timeout)
}

const dailyOrdersQuery = `
	SELECT
		COUNT(*) AS orders_placed,
		COUNT(*) FILTER (WHERE order_type = 'dine-in') AS orders_dine_in,
		COUNT(*) FILTER (WHERE order_type = 'takeaway') AS orders_takeaway,
		COUNT(*) FILTER (WHERE status = 'served') AS orders_served,
		COUNT(*) FILTER (WHERE status = 'cancelled') AS orders_cancelled,
		COALESCE(SUM(total_amount), 0) AS gross_revenue,
		COALESCE(SUM(total_amount) FILTER (WHERE status = 'cancelled'), 0) AS cancelled_revenue
	FROM orders
	WHERE (created_at AT TIME ZONE 'UTC')::date = $1`

const dailyReservationsQuery = `
	SELECT
		COUNT(*) AS reservations_booked,
		COUNT(*) FILTER (WHERE status = 'cancelled') AS reservations_cancelled,
		COUNT(*) FILTER (WHERE status = 'completed') AS reservations_completed,
		COALESCE(SUM(guest_count), 0) AS guests_booked
	FROM reservations
	WHERE (created_at AT TIME ZONE 'UTC')::date = $1`

func (l *PostgresLedger) DailySummary(ctx context.Context, day string) (*domain.DailySummary, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	summary := &domain.DailySummary{Date: day}
	if err := l.DB.GetContext(ctx, summary, dailyOrdersQuery, day); err != nil {
		return nil, classify(err)
	}
	if err := l.DB.GetContext(ctx, summary, dailyReservationsQuery, day); err != nil {
		return nil, classify(err)
	}
	summary.Revenue = summary.GrossRevenue.Sub(summary.CancelledRevenue)
	return summary, nil
}

func (l *PostgresLedger) TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	items := []domain.PopularItem{}
	err := l.DB.SelectContext(ctx, &items, `
		SELECT oi.menu_item_id::text AS menu_item_id, MAX(oi.item_name) AS name, SUM(oi.quantity) AS quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE (o.created_at AT TIME ZONE 'UTC')::date = $1
		GROUP BY oi.menu_item_id
		ORDER BY quantity DESC, name
		LIMIT $2`, day, limit)
	if err != nil {
		return nil, classify(err)
	}
	return items, nil
}

// UpcomingReservations lists confirmed parties from the given date onward,
// soonest first.
func (l *PostgresLedger) UpcomingReservations(ctx context.Context, from string, limit int) ([]domain.UpcomingReservation, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	reservations := []domain.UpcomingReservation{}
	err := l.DB.SelectContext(ctx, &reservations, `
		SELECT confirmation_id, customer_name,
			to_char(reservation_date, 'YYYY-MM-DD') AS reservation_date,
			to_char(reservation_time, 'HH24:MI') AS reservation_time,
			guest_count, special_requests
		FROM reservations
		WHERE status = 'confirmed' AND reservation_date >= $1
		ORDER BY reservation_date, reservation_time, created_at
		LIMIT $2`, from, limit)
	if err != nil {
		return nil, classify(err)
	}
	return reservations, nil
}

func (l *PostgresLedger) SlotGuests(ctx context.Context, date string) ([]domain.SlotGuests, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	slots := []domain.SlotGuests{}
	err := l.DB.SelectContext(ctx, &slots, `
		SELECT to_char(reservation_time, 'HH24:MI') AS time, SUM(guest_count) AS guests
		FROM reservations
		WHERE reservation_date = $1 AND status <> 'cancelled'
		GROUP BY reservation_time
		ORDER BY reservation_time`, date)
	if err != nil {
		return nil, classify(err)
	}
	return slots, nil
}
