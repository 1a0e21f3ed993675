package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"savory-delights/agg-svc/internal/service"
	"savory-delights/agg-svc/internal/storage"
	"savory-delights/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const consumerGroup = "agg-svc-consumer"

func run(ctx context.Context, reader service.MessageReader, rdb *redis.Client) error {
	consumer := service.NewConsumer(reader, storage.NewStore(rdb))
	return consumer.Start(ctx)
}

func main() {
	config.LoadEnv()
	config.InitLogger("agg-svc")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.EventsTopic(), consumerGroup)
	defer reader.Close()

	if err := run(ctx, reader, rdb); err != nil {
		log.Fatal().Err(err).Msg("consumer failed")
	}
	log.Info().Msg("aggregation service stopped")
}
