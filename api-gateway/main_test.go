package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"savory-delights/api-gateway/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RESTAURANT_SVC_URL", "")
	t.Setenv("ANALYTICS_SVC_URL", "http://analytics:9000")

	cfg := loadConfig()

	assert.Equal(t, "http://localhost:8081", cfg.RestaurantSvcURL)
	assert.Equal(t, "http://analytics:9000", cfg.AnalyticsSvcURL)
}

func TestGatewayEndToEnd(t *testing.T) {
	var restaurantPath, analyticsPath, body string
	restaurant := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		restaurantPath = r.URL.RequestURI()
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusCreated)
	}))
	defer restaurant.Close()
	analytics := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		analyticsPath = r.URL.RequestURI()
		json.NewEncoder(w).Encode(map[string]string{"source": "redis"})
	}))
	defer analytics.Close()

	handler := buildHandler(gateway.Config{
		RestaurantSvcURL: restaurant.URL,
		AnalyticsSvcURL:  analytics.URL,
	}, &http.Client{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"order_type":"takeaway"}`)))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/orders", restaurantPath)
	assert.JSONEq(t, `{"order_type":"takeaway"}`, body)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/popular-items?limit=3", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/api/dashboard/popular-items?limit=3", analyticsPath)
	assert.Contains(t, rr.Body.String(), "redis")
}

func TestGatewayUpstreamDown(t *testing.T) {
	handler := buildHandler(gateway.Config{RestaurantSvcURL: "http://127.0.0.1:1"}, &http.Client{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	handler := buildHandler(gateway.Config{}, &http.Client{})

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
