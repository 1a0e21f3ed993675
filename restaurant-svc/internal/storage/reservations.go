package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"savory-delights/restaurant-svc/internal/domain"
	"savory-delights/restaurant-svc/internal/service"
)

const reservationColumns = `id, confirmation_id, customer_name, customer_email, customer_phone, reservation_date,
	reservation_time, guest_count, special_requests, status, created_at, updated_at`

const bookedGuestsQuery = `
	SELECT COALESCE(SUM(guest_count), 0)
	FROM reservations
	WHERE reservation_date = $1
	  AND reservation_time >= $2 AND reservation_time < $3
	  AND status = 'confirmed'`

// InsertReservation reads the confirmed guest count for the window, asks admit
// whether the party fits and inserts the row, all under serializable
// isolation. A concurrent booking for the same window makes one of the two
// transactions fail with a serialization error, reported as ErrConflict.
func (r *PostgresRepository) InsertReservation(ctx context.Context, res *domain.Reservation, window domain.Window, admit service.AdmitFunc) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback()

	var booked int
	if err := tx.GetContext(ctx, &booked, bookedGuestsQuery, res.ReservationDate, window.Start, window.End); err != nil {
		return classify(err)
	}
	if err := admit(booked); err != nil {
		return err
	}

	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO reservations (confirmation_id, customer_name, customer_email, customer_phone,
			reservation_date, reservation_time, guest_count, special_requests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		res.ConfirmationID, res.CustomerName, res.CustomerEmail, res.CustomerPhone,
		res.ReservationDate, res.ReservationTime, res.GuestCount, res.SpecialRequests, res.Status,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return classify(err)
	}

	return classify(tx.Commit())
}

func (r *PostgresRepository) BookedGuests(ctx context.Context, date domain.Date, window domain.Window) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var booked int
	if err := r.DB.GetContext(ctx, &booked, bookedGuestsQuery, date, window.Start, window.End); err != nil {
		return 0, classify(err)
	}
	return booked, nil
}

func (r *PostgresRepository) GetByConfirmation(ctx context.Context, confirmationID string) (*domain.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var res domain.Reservation
	if err := r.DB.GetContext(ctx, &res,
		`SELECT `+reservationColumns+` FROM reservations WHERE confirmation_id = $1`, confirmationID); err != nil {
		return nil, classify(err)
	}
	return &res, nil
}

func (r *PostgresRepository) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		where []string
		args  []any
	)
	if filter.Date != nil {
		args = append(args, *filter.Date)
		where = append(where, fmt.Sprintf("reservation_date = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY reservation_date, reservation_time`

	reservations := []domain.Reservation{}
	if err := r.DB.SelectContext(ctx, &reservations, query, args...); err != nil {
		return nil, classify(err)
	}
	return reservations, nil
}

func (r *PostgresRepository) UpdateReservationStatus(ctx context.Context, confirmationID string, from, to domain.ReservationStatus) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, `
		UPDATE reservations SET status = $1, updated_at = now()
		WHERE confirmation_id = $2 AND status = $3`, to, confirmationID, from)
	if err != nil {
		return classify(err)
	}
	return r.checkSwapped(ctx, result, `SELECT EXISTS(SELECT 1 FROM reservations WHERE confirmation_id = $1)`, confirmationID)
}

// checkSwapped reports ErrConflict when a compare-and-set update matched no
// row but the record exists, and ErrNotFound when it does not.
func (r *PostgresRepository) checkSwapped(ctx context.Context, result sql.Result, existsQuery, key string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if rows > 0 {
		return nil
	}
	var exists bool
	if err := r.DB.GetContext(ctx, &exists, existsQuery, key); err != nil {
		return classify(err)
	}
	if exists {
		return fmt.Errorf("%w: %s was changed concurrently", domain.ErrConflict, key)
	}
	return fmt.Errorf("%w: %s", domain.ErrNotFound, key)
}
