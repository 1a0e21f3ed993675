package service

import (
	"context"
	"fmt"
	"time"

	"savory-delights/analytics-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

const (
	DefaultLimit = 5
	MaxLimit     = 50
)

// DashboardService serves staff dashboard figures. Counters come from the
// Redis cache when it has them; otherwise they are computed from Postgres.
type DashboardService struct {
	Cache  StatsCache
	Ledger Ledger
	now    func() time.Time
}

func NewDashboardService(cache StatsCache, ledger Ledger) *DashboardService {
	return &DashboardService{Cache: cache, Ledger: ledger, now: time.Now}
}

// WithClock replaces the clock used to decide what "today" is.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *DashboardService) Today(ctx context.Context) (*domain.DailySummary, error) {
	return s.Summary(ctx, "")
}

// Summary returns the headline counters for day; an empty day means today.
func (s *DashboardService) Summary(ctx context.Context, day string) (*domain.DailySummary, error) {
	day, err := s.resolveDay(day)
	if err != nil {
		return nil, err
	}

	cached, err := s.Cache.DailySummary(ctx, day)
	if err != nil {
		log.Warn().Err(err).Str("day", day).Msg("stats cache unavailable, reading ledger")
	}
	if cached != nil {
		cached.Source = domain.SourceRedis
		return cached, nil
	}

	summary, err := s.Ledger.DailySummary(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("daily summary %s: %w", day, err)
	}
	summary.Date = day
	summary.Source = domain.SourcePostgres
	return summary, nil
}

func (s *DashboardService) PopularItems(ctx context.Context, day string, limit int) (*domain.PopularItems, error) {
	day, err := s.resolveDay(day)
	if err != nil {
		return nil, err
	}
	if limit, err = resolveLimit(limit); err != nil {
		return nil, err
	}

	items, err := s.Cache.TopItems(ctx, day, limit)
	if err != nil {
		log.Warn().Err(err).Str("day", day).Msg("stats cache unavailable, reading ledger")
	}
	if len(items) > 0 {
		return &domain.PopularItems{Date: day, Items: items, Source: domain.SourceRedis}, nil
	}

	items, err = s.Ledger.TopItems(ctx, day, limit)
	if err != nil {
		return nil, fmt.Errorf("popular items %s: %w", day, err)
	}
	if items == nil {
		items = []domain.PopularItem{}
	}
	return &domain.PopularItems{Date: day, Items: items, Source: domain.SourcePostgres}, nil
}

// UpcomingReservations always reads Postgres; the cache carries no
// per-reservation detail.
func (s *DashboardService) UpcomingReservations(ctx context.Context, limit int) ([]domain.UpcomingReservation, error) {
	limit, err := resolveLimit(limit)
	if err != nil {
		return nil, err
	}

	reservations, err := s.Ledger.UpcomingReservations(ctx, s.today(), limit)
	if err != nil {
		return nil, fmt.Errorf("upcoming reservations: %w", err)
	}
	if reservations == nil {
		reservations = []domain.UpcomingReservation{}
	}
	return reservations, nil
}

// SlotLoad returns booked guests per reservation time for date.
func (s *DashboardService) SlotLoad(ctx context.Context, date string) (*domain.SlotLoad, error) {
	date, err := s.resolveDay(date)
	if err != nil {
		return nil, err
	}

	load := &domain.SlotLoad{Date: date, Source: domain.SourceRedis}
	slots, err := s.Cache.SlotGuests(ctx, date)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("stats cache unavailable, reading ledger")
	}
	if len(slots) == 0 {
		load.Source = domain.SourcePostgres
		if slots, err = s.Ledger.SlotGuests(ctx, date); err != nil {
			return nil, fmt.Errorf("slot load %s: %w", date, err)
		}
	}

	load.Slots = slots
	if load.Slots == nil {
		load.Slots = []domain.SlotGuests{}
	}
	for _, slot := range load.Slots {
		load.Total += slot.Guests
	}
	return load, nil
}

func (s *DashboardService) resolveDay(day string) (string, error) {
	if day == "" {
		return s.today(), nil
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return "", fmt.Errorf("%w: %w: %q", domain.ErrValidation, domain.ErrInvalidDate, day)
	}
	return day, nil
}

func resolveLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultLimit, nil
	case limit < 0 || limit > MaxLimit:
		return 0, fmt.Errorf("%w: %w: must be between 1 and %d", domain.ErrValidation, domain.ErrInvalidLimit, MaxLimit)
	}
	return limit, nil
}
