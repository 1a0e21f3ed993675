package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each cart as a JSON document that expires after TTL
// without activity.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(cartID string) string {
	return "restaurant-cart:" + cartID
}

// Load returns an empty cart when none is stored.
func (s *RedisCartStore) Load(ctx context.Context, cartID string) (*domain.Cart, error) {
	raw, err := s.Client.Get(ctx, s.CartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load cart: %w", domain.ErrStoreUnavailable, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", cartID, err)
	}
	return &cart, nil
}

// Save stores the cart and refreshes its TTL. An empty cart is deleted.
func (s *RedisCartStore) Save(ctx context.Context, cartID string, cart *domain.Cart) error {
	if cart == nil || cart.IsEmpty() {
		return s.Clear(ctx, cartID)
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cartID, err)
	}
	if err := s.Client.Set(ctx, s.CartKey(cartID), payload, s.TTL).Err(); err != nil {
		return fmt.Errorf("%w: save cart: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, cartID string) error {
	if err := s.Client.Del(ctx, s.CartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("%w: clear cart: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
