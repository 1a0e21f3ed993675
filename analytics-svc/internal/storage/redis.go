package storage

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"savory-delights/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisStats reads the counters maintained by agg-svc.
type RedisStats struct {
	rdb *redis.Client
}

func NewRedisStats(rdb *redis.Client) *RedisStats {
	return &RedisStats{rdb: rdb}
}

// DailySummary returns the counters for day, or nil when nothing was
// recorded for it.
func (s *RedisStats) DailySummary(ctx context.Context, day string) (*domain.DailySummary, error) {
	fields, err := s.rdb.HGetAll(ctx, domain.DailyKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("read daily stats %s: %w", day, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	counter := func(name string) int64 {
		n, _ := strconv.ParseInt(fields[name], 10, 64)
		return n
	}
	summary := &domain.DailySummary{
		Date:                  day,
		OrdersPlaced:          counter(domain.FieldOrdersPlaced),
		OrdersDineIn:          counter(domain.FieldOrdersDineIn),
		OrdersTakeaway:        counter(domain.FieldOrdersTakeaway),
		OrdersServed:          counter(domain.FieldOrdersServed),
		OrdersCancelled:       counter(domain.FieldOrdersCancelled),
		GrossRevenue:          decimal.New(counter(domain.FieldRevenueCents), -2),
		CancelledRevenue:      decimal.New(counter(domain.FieldCancelledCents), -2),
		ReservationsBooked:    counter(domain.FieldReservationsBooked),
		ReservationsCancelled: counter(domain.FieldReservationsCancelled),
		ReservationsCompleted: counter(domain.FieldReservationsCompleted),
		GuestsBooked:          counter(domain.FieldGuestsBooked),
	}
	summary.Revenue = summary.GrossRevenue.Sub(summary.CancelledRevenue)
	return summary, nil
}

// TopItems returns the best sellers for day by quantity. Names come from the
// shared name hash; an id without a name is shown as is.
func (s *RedisStats) TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	ranked, err := s.rdb.ZRevRangeWithScores(ctx, domain.ItemsKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read item ranking %s: %w", day, err)
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	ids := make([]string, len(ranked))
	for i, z := range ranked {
		ids[i] = fmt.Sprint(z.Member)
	}
	names, err := s.rdb.HMGet(ctx, domain.ItemNamesKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("read item names: %w", err)
	}

	items := make([]domain.PopularItem, len(ranked))
	for i, z := range ranked {
		name, _ := names[i].(string)
		if name == "" {
			name = ids[i]
		}
		items[i] = domain.PopularItem{MenuItemID: ids[i], Name: name, Quantity: int64(z.Score)}
	}
	return items, nil
}

// SlotGuests returns booked guests per reservation time on date, sorted by
// time. Times whose load dropped to zero are left out.
func (s *RedisStats) SlotGuests(ctx context.Context, date string) ([]domain.SlotGuests, error) {
	fields, err := s.rdb.HGetAll(ctx, domain.SlotsKey(date)).Result()
	if err != nil {
		return nil, fmt.Errorf("read slot load %s: %w", date, err)
	}

	var slots []domain.SlotGuests
	for at, raw := range fields {
		guests, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || guests <= 0 {
			continue
		}
		slots = append(slots, domain.SlotGuests{Time: at, Guests: guests})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	return slots, nil
}
