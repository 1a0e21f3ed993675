package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds the tunables of restaurant-svc.
type Settings struct {
	HTTPAddr      string
	TaxRate       decimal.Decimal
	CartTTL       time.Duration
	StoreTimeout  time.Duration
	PublicBaseURL string
}

func LoadSettings() (Settings, error) {
	taxRate, err := decimal.NewFromString(GetEnv("TAX_RATE", "0.08"))
	if err != nil {
		return Settings{}, fmt.Errorf("parse TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Settings{}, fmt.Errorf("TAX_RATE must be in [0, 1), got %s", taxRate)
	}

	cartTTL, err := time.ParseDuration(GetEnv("CART_TTL", "72h"))
	if err != nil {
		return Settings{}, fmt.Errorf("parse CART_TTL: %w", err)
	}

	storeTimeout, err := time.ParseDuration(GetEnv("STORE_TIMEOUT", "5s"))
	if err != nil {
		return Settings{}, fmt.Errorf("parse STORE_TIMEOUT: %w", err)
	}
	if storeTimeout <= 0 {
		return Settings{}, fmt.Errorf("STORE_TIMEOUT must be positive, got %s", storeTimeout)
	}

	return Settings{
		HTTPAddr:      GetEnv("HTTP_ADDR", ":8081"),
		TaxRate:       taxRate,
		CartTTL:       cartTTL,
		StoreTimeout:  storeTimeout,
		PublicBaseURL: GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}, nil
}
