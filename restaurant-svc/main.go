package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"savory-delights/config"
	httpapi "savory-delights/restaurant-svc/internal/api/http"
	"savory-delights/restaurant-svc/internal/service"
	"savory-delights/restaurant-svc/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// buildRouter wires repositories and services into the HTTP handler.
func buildRouter(db *sqlx.DB, rdb *redis.Client, publisher service.EventPublisher, settings config.Settings) http.Handler {
	repo := storage.NewPostgresRepository(db, settings.StoreTimeout)
	carts := storage.NewRedisCartStore(rdb, settings.CartTTL)
	qr := service.DefaultQRGenerator{Size: 256}

	catalog := service.NewCatalogService(repo)
	timeSlots := service.NewTimeSlotService(repo)
	reservations := service.NewReservationService(service.NewAvailabilityResolver(repo), repo, publisher, qr, settings.PublicBaseURL)
	cartSvc := service.NewCartService(carts, repo, settings.TaxRate)
	orders := service.NewOrderService(repo, repo, carts, publisher, qr, settings.TaxRate, settings.PublicBaseURL)

	handler := httpapi.NewHandler(catalog, timeSlots, reservations, cartSvc, orders)
	return httpapi.NewRouter(handler)
}

func main() {
	config.LoadEnv()
	config.InitLogger("restaurant-svc")

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.NewPostgresRepository(db, settings.StoreTimeout).EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.EventsTopic())
	defer writer.Close()

	router := buildRouter(db, rdb, storage.NewKafkaPublisher(writer), settings)
	if err := httpapi.StartServer(ctx, settings.HTTPAddr, router); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("restaurant service stopped")
}
