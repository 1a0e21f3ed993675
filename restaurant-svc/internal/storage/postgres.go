package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const defaultTimeout = 5 * time.Second

// PostgresRepository backs the catalog, time slots, reservations and orders.
type PostgresRepository struct {
	DB      *sqlx.DB
	Timeout time.Duration
}

func NewPostgresRepository(db *sqlx.DB, timeout time.Duration) *PostgresRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PostgresRepository{DB: db, Timeout: timeout}
}

// withTimeout bounds every store call so a stalled connection surfaces as
// ErrStoreUnavailable instead of hanging the request.
func (r *PostgresRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.Timeout)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		category TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_option_categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		required BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_option_choices (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		category_id UUID NOT NULL REFERENCES menu_option_categories(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS menu_add_ons (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS time_slots (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		day_of_week SMALLINT NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		max_capacity INTEGER NOT NULL CHECK (max_capacity >= 0),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (start_time < end_time)
	)`,
	`CREATE TABLE IF NOT EXISTS time_slot_exceptions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		exception_date DATE NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		max_capacity INTEGER NOT NULL CHECK (max_capacity >= 0),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (start_time < end_time)
	)`,
	`CREATE INDEX IF NOT EXISTS time_slot_exceptions_date_idx ON time_slot_exceptions (exception_date)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		confirmation_id TEXT NOT NULL UNIQUE,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		reservation_date DATE NOT NULL,
		reservation_time TIME NOT NULL,
		guest_count INTEGER NOT NULL CHECK (guest_count > 0),
		special_requests TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'confirmed',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS reservations_date_idx ON reservations (reservation_date, reservation_time)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_number TEXT NOT NULL UNIQUE,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL DEFAULT '',
		order_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		subtotal NUMERIC(10,2) NOT NULL,
		tax_amount NUMERIC(10,2) NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id UUID NOT NULL,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(10,2) NOT NULL,
		line_total NUMERIC(10,2) NOT NULL,
		selections JSONB NOT NULL DEFAULT '{}'
	)`,
}

// EnsureSchema creates missing tables and indexes. It is safe to run on every start.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%.60s`: %w", stmt, err)
		}
	}
	return nil
}
