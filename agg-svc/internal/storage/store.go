package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savory-delights/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	statsRetention     = 35 * 24 * time.Hour
	processedRetention = 7 * 24 * time.Hour
)

// Store keeps dashboard counters in Redis. Every Record call applies its
// increments and the processed marker in one MULTI/EXEC block.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) IsProcessed(ctx context.Context, dedupKey string) (bool, error) {
	n, err := s.rdb.Exists(ctx, domain.ProcessedKeyPrefix+dedupKey).Result()
	if err != nil {
		return false, fmt.Errorf("check processed %s: %w", dedupKey, err)
	}
	return n > 0, nil
}

func (s *Store) RecordOrderPlaced(ctx context.Context, e domain.Event) error {
	day := e.Day()
	daily := domain.DailyKey(day)
	items := domain.ItemsKey(day)

	return s.apply(ctx, e, func(pipe redis.Pipeliner) {
		pipe.HIncrBy(ctx, daily, domain.FieldOrdersPlaced, 1)
		switch e.OrderType {
		case "dine-in":
			pipe.HIncrBy(ctx, daily, domain.FieldOrdersDineIn, 1)
		case "takeaway":
			pipe.HIncrBy(ctx, daily, domain.FieldOrdersTakeaway, 1)
		}
		pipe.HIncrBy(ctx, daily, domain.FieldRevenueCents, cents(e))

		for _, item := range e.Items {
			pipe.ZIncrBy(ctx, items, float64(item.Quantity), item.MenuItemID)
			if item.Name != "" {
				pipe.HSet(ctx, domain.ItemNamesKey, item.MenuItemID, item.Name)
			}
		}
		pipe.Expire(ctx, daily, statsRetention)
		pipe.Expire(ctx, items, statsRetention)
	})
}

func (s *Store) RecordOrderStatus(ctx context.Context, e domain.Event) error {
	daily := domain.DailyKey(e.Day())

	return s.apply(ctx, e, func(pipe redis.Pipeliner) {
		switch e.Status {
		case "served":
			pipe.HIncrBy(ctx, daily, domain.FieldOrdersServed, 1)
		case "cancelled":
			pipe.HIncrBy(ctx, daily, domain.FieldOrdersCancelled, 1)
			pipe.HIncrBy(ctx, daily, domain.FieldCancelledCents, cents(e))
		}
		pipe.Expire(ctx, daily, statsRetention)
	})
}

func (s *Store) RecordReservationBooked(ctx context.Context, e domain.Event) error {
	daily := domain.DailyKey(e.Day())
	slots := domain.SlotsKey(e.ReservationDate)

	return s.apply(ctx, e, func(pipe redis.Pipeliner) {
		pipe.HIncrBy(ctx, daily, domain.FieldReservationsBooked, 1)
		pipe.HIncrBy(ctx, daily, domain.FieldGuestsBooked, int64(e.GuestCount))
		pipe.HIncrBy(ctx, slots, e.ReservationTime, int64(e.GuestCount))
		pipe.Expire(ctx, daily, statsRetention)
		pipe.Expire(ctx, slots, statsRetention)
	})
}

// RecordReservationStatus keeps the per-time guest load in step with the
// ledger: cancelling releases the party, re-confirming takes it back.
func (s *Store) RecordReservationStatus(ctx context.Context, e domain.Event) error {
	daily := domain.DailyKey(e.Day())
	slots := domain.SlotsKey(e.ReservationDate)
	guests := int64(e.GuestCount)

	return s.apply(ctx, e, func(pipe redis.Pipeliner) {
		switch {
		case e.Status == "cancelled":
			pipe.HIncrBy(ctx, daily, domain.FieldReservationsCancelled, 1)
			if e.PreviousStatus == "confirmed" {
				pipe.HIncrBy(ctx, slots, e.ReservationTime, -guests)
			}
		case e.Status == "completed":
			pipe.HIncrBy(ctx, daily, domain.FieldReservationsCompleted, 1)
		case e.Status == "confirmed" && e.PreviousStatus == "cancelled":
			pipe.HIncrBy(ctx, slots, e.ReservationTime, guests)
		}
		pipe.Expire(ctx, daily, statsRetention)
		pipe.Expire(ctx, slots, statsRetention)
	})
}

func (s *Store) apply(ctx context.Context, e domain.Event, fn func(redis.Pipeliner)) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		fn(pipe)
		pipe.Set(ctx, domain.ProcessedKeyPrefix+e.DedupKey(), e.Day(), processedRetention)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("record %s: %w", e.Type, err)
	}
	return nil
}

func cents(e domain.Event) int64 {
	return e.TotalAmount.Shift(2).Round(0).IntPart()
}
