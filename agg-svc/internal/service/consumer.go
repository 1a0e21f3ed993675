package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"savory-delights/agg-svc/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxRetryDelay = 30 * time.Second

type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: time.Second,
	}
}

// Start reads events until ctx is cancelled or the reader is closed. An
// offset is committed only after its event has been applied, so a crash
// replays it; the processed marker makes the replay a no-op.
func (c *Consumer) Start(ctx context.Context) error {
	log.Info().Msg("aggregation consumer started")
	for {
		msg, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			log.Error().Err(err).Msg("failed to fetch message")
			if !c.sleep(ctx, c.RetryDelay) {
				return nil
			}
			continue
		}

		if !c.handle(ctx, msg) {
			return nil
		}
		if err := c.Reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error().Err(err).Int64("offset", msg.Offset).Msg("failed to commit offset")
		}
	}
}

// handle applies one message, retrying store failures with backoff. It
// returns false when ctx ended before the message was applied.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) bool {
	var event domain.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Warn().Err(err).Int64("offset", msg.Offset).Str("key", string(msg.Key)).Msg("skipping undecodable message")
		return true
	}

	delay := c.RetryDelay
	for {
		err := c.ProcessEvent(ctx, event)
		if err == nil {
			return true
		}
		log.Error().Err(err).Str("type", event.Type).Dur("retry_in", delay).Msg("failed to apply event")
		if !c.sleep(ctx, delay) {
			return false
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

// ProcessEvent updates the counters for one event. Events already applied
// and event types the dashboard does not track are ignored.
func (c *Consumer) ProcessEvent(ctx context.Context, e domain.Event) error {
	var record func(context.Context, domain.Event) error
	switch e.Type {
	case domain.EventOrderPlaced:
		record = c.Store.RecordOrderPlaced
	case domain.EventOrderStatusChanged:
		record = c.Store.RecordOrderStatus
	case domain.EventReservationBooked:
		record = c.Store.RecordReservationBooked
	case domain.EventReservationStatusChanged:
		record = c.Store.RecordReservationStatus
	default:
		log.Debug().Str("type", e.Type).Msg("ignoring event type")
		return nil
	}

	processed, err := c.Store.IsProcessed(ctx, e.DedupKey())
	if err != nil {
		return err
	}
	if processed {
		log.Debug().Str("dedup_key", e.DedupKey()).Msg("event already applied")
		return nil
	}

	if err := record(ctx, e); err != nil {
		return err
	}
	log.Info().Str("type", e.Type).Str("status", e.Status).Msg("event applied")
	return nil
}

func (c *Consumer) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
