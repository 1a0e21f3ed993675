package service

import (
	"context"

	"savory-delights/analytics-svc/internal/domain"
	"savory-delights/analytics-svc/internal/storage"
)

// StatsCache is the pre-aggregated view kept in Redis. A nil result means
// the cache holds nothing for the requested day.
type StatsCache interface {
	DailySummary(ctx context.Context, day string) (*domain.DailySummary, error)
	TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error)
	SlotGuests(ctx context.Context, date string) ([]domain.SlotGuests, error)
}

// Ledger computes the same figures from the system of record.
type Ledger interface {
	DailySummary(ctx context.Context, day string) (*domain.DailySummary, error)
	TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error)
	UpcomingReservations(ctx context.Context, from string, limit int) ([]domain.UpcomingReservation, error)
	SlotGuests(ctx context.Context, date string) ([]domain.SlotGuests, error)
}

type DashboardInterface interface {
	Today(ctx context.Context) (*domain.DailySummary, error)
	Summary(ctx context.Context, day string) (*domain.DailySummary, error)
	PopularItems(ctx context.Context, day string, limit int) (*domain.PopularItems, error)
	UpcomingReservations(ctx context.Context, limit int) ([]domain.UpcomingReservation, error)
	SlotLoad(ctx context.Context, date string) (*domain.SlotLoad, error)
}

var (
	_ StatsCache         = (*storage.RedisStats)(nil)
	_ Ledger             = (*storage.PostgresLedger)(nil)
	_ DashboardInterface = (*DashboardService)(nil)
)
