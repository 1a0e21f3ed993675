package service

import (
	"context"
	"fmt"

	"savory-delights/restaurant-svc/internal/domain"
)

// AvailabilityResolver turns the weekly templates and the date exceptions
// into the windows that apply on one date.
type AvailabilityResolver struct {
	source SlotSource
}

func NewAvailabilityResolver(source SlotSource) *AvailabilityResolver {
	return &AvailabilityResolver{source: source}
}

// Resolve returns the exceptions for date when at least one exists, otherwise
// the templates for the date's weekday. The two are never merged. Windows are
// returned in store order; unavailable windows are included.
func (r *AvailabilityResolver) Resolve(ctx context.Context, date domain.Date) ([]domain.Window, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidDate)
	}

	exceptions, err := r.source.ExceptionsForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load exceptions for %s: %w", date, err)
	}
	if len(exceptions) > 0 {
		windows := make([]domain.Window, 0, len(exceptions))
		for _, exception := range exceptions {
			windows = append(windows, exception.Window())
		}
		return windows, nil
	}

	templates, err := r.source.TemplatesForWeekday(ctx, int(date.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("load templates for %s: %w", date.Weekday(), err)
	}
	windows := make([]domain.Window, 0, len(templates))
	for _, template := range templates {
		windows = append(windows, template.Window())
	}
	return windows, nil
}

// FindBookable returns the available window containing t.
func FindBookable(windows []domain.Window, t domain.Clock) (domain.Window, bool) {
	for _, window := range windows {
		if window.IsAvailable && window.Contains(t) {
			return window, true
		}
	}
	return domain.Window{}, false
}
