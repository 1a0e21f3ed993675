package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "savory-delights/analytics-svc/internal/api/http"
	"savory-delights/analytics-svc/internal/service"
	"savory-delights/analytics-svc/internal/storage"
	"savory-delights/config"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func buildRouter(db *sqlx.DB, rdb *redis.Client, storeTimeout time.Duration) http.Handler {
	dashboard := service.NewDashboardService(storage.NewRedisStats(rdb), storage.NewPostgresLedger(db, storeTimeout))
	return httpapi.NewRouter(httpapi.NewHandler(dashboard))
}

func main() {
	config.LoadEnv()
	config.InitLogger("analytics-svc")

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	addr := config.GetEnv("HTTP_ADDR", ":8083")
	if err := httpapi.StartServer(ctx, addr, buildRouter(db, rdb, settings.StoreTimeout)); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("analytics service stopped")
}
