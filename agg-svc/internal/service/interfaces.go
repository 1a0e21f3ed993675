package service

import (
	"context"

	"savory-delights/agg-svc/internal/domain"
	"savory-delights/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	IsProcessed(ctx context.Context, dedupKey string) (bool, error)
	RecordOrderPlaced(ctx context.Context, e domain.Event) error
	RecordOrderStatus(ctx context.Context, e domain.Event) error
	RecordReservationBooked(ctx context.Context, e domain.Event) error
	RecordReservationStatus(ctx context.Context, e domain.Event) error
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessEvent(ctx context.Context, e domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
