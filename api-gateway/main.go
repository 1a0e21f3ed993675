package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savory-delights/api-gateway/internal/gateway"
	"savory-delights/config"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func loadConfig() gateway.Config {
	return gateway.Config{
		RestaurantSvcURL: config.GetEnv("RESTAURANT_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL:  config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		FrontendDir:      config.GetEnv("FRONTEND_DIR", "./frontend"),
	}
}

func buildHandler(cfg gateway.Config, client gateway.HTTPClient) http.Handler {
	gw := gateway.NewGateway(cfg, client)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{gateway.RequestIDHeader},
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	config.LoadEnv()
	config.InitLogger("api-gateway")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              config.GetEnv("HTTP_ADDR", ":8080"),
		Handler:           buildHandler(loadConfig(), &http.Client{Timeout: 30 * time.Second}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", srv.Addr).Msg("api gateway starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("api gateway stopped")
}
