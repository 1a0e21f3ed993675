package storage

import (
	"context"

	"savory-delights/restaurant-svc/internal/domain"
)

const (
	templateColumns  = `id, day_of_week, start_time, end_time, max_capacity, is_available, created_at, updated_at`
	exceptionColumns = `id, exception_date, start_time, end_time, max_capacity, is_available, COALESCE(reason, '') AS reason, created_at, updated_at`
)

func (r *PostgresRepository) TemplatesForWeekday(ctx context.Context, weekday int) ([]domain.TimeSlotTemplate, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	templates := []domain.TimeSlotTemplate{}
	if err := r.DB.SelectContext(ctx, &templates,
		`SELECT `+templateColumns+` FROM time_slots WHERE day_of_week = $1`, weekday); err != nil {
		return nil, classify(err)
	}
	return templates, nil
}

func (r *PostgresRepository) ExceptionsForDate(ctx context.Context, date domain.Date) ([]domain.TimeSlotException, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	exceptions := []domain.TimeSlotException{}
	if err := r.DB.SelectContext(ctx, &exceptions,
		`SELECT `+exceptionColumns+` FROM time_slot_exceptions WHERE exception_date = $1`, date); err != nil {
		return nil, classify(err)
	}
	return exceptions, nil
}

func (r *PostgresRepository) ListTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	templates := []domain.TimeSlotTemplate{}
	if err := r.DB.SelectContext(ctx, &templates,
		`SELECT `+templateColumns+` FROM time_slots ORDER BY day_of_week, start_time`); err != nil {
		return nil, classify(err)
	}
	return templates, nil
}

func (r *PostgresRepository) CreateTemplate(ctx context.Context, t *domain.TimeSlotTemplate) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowxContext(ctx, `
		INSERT INTO time_slots (day_of_week, start_time, end_time, max_capacity, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		t.DayOfWeek, t.StartTime, t.EndTime, t.MaxCapacity, t.IsAvailable,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return classify(err)
}

func (r *PostgresRepository) UpdateTemplate(ctx context.Context, t *domain.TimeSlotTemplate) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowxContext(ctx, `
		UPDATE time_slots
		SET day_of_week = $1, start_time = $2, end_time = $3, max_capacity = $4, is_available = $5, updated_at = now()
		WHERE id = $6
		RETURNING created_at, updated_at`,
		t.DayOfWeek, t.StartTime, t.EndTime, t.MaxCapacity, t.IsAvailable, t.ID,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return classify(err)
}

func (r *PostgresRepository) DeleteTemplate(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, `DELETE FROM time_slots WHERE id = $1`, id)
}

func (r *PostgresRepository) ListExceptions(ctx context.Context) ([]domain.TimeSlotException, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	exceptions := []domain.TimeSlotException{}
	if err := r.DB.SelectContext(ctx, &exceptions,
		`SELECT `+exceptionColumns+` FROM time_slot_exceptions ORDER BY exception_date, start_time`); err != nil {
		return nil, classify(err)
	}
	return exceptions, nil
}

func (r *PostgresRepository) CreateException(ctx context.Context, e *domain.TimeSlotException) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowxContext(ctx, `
		INSERT INTO time_slot_exceptions (exception_date, start_time, end_time, max_capacity, is_available, reason)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, created_at, updated_at`,
		e.ExceptionDate, e.StartTime, e.EndTime, e.MaxCapacity, e.IsAvailable, e.Reason,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return classify(err)
}

func (r *PostgresRepository) DeleteException(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, `DELETE FROM time_slot_exceptions WHERE id = $1`, id)
}
