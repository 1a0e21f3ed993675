package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"savory-delights/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	settings := config.Settings{
		TaxRate:       decimal.RequireFromString("0.08"),
		CartTTL:       time.Hour,
		StoreTimeout:  time.Second,
		PublicBaseURL: "http://localhost:8080",
	}
	return buildRouter(sqlx.NewDb(mockDB, "postgres"), rdb, nil, settings), mock
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "restaurant-svc", body["service"])
}

func TestAvailabilityEndToEnd(t *testing.T) {
	router, mock := setupRouter(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM time_slot_exceptions WHERE exception_date = $1")).
		WithArgs("2024-06-03").
		WillReturnRows(sqlmock.NewRows([]string{"id", "exception_date", "start_time", "end_time", "max_capacity", "is_available", "reason", "created_at", "updated_at"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM time_slots WHERE day_of_week = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_of_week", "start_time", "end_time", "max_capacity", "is_available", "created_at", "updated_at"}).
			AddRow("dinner", 1, "18:00:00", "20:00:00", 10, true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(guest_count), 0)")).
		WithArgs("2024-06-03", "18:00:00", "20:00:00").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/availability?date=2024-06-03", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Windows []struct {
			Start        string `json:"start_time"`
			BookedGuests int    `json:"booked_guests"`
			Remaining    int    `json:"remaining"`
			Bookable     bool   `json:"bookable"`
		} `json:"windows"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body.Windows, 1)
	assert.Equal(t, "18:00", body.Windows[0].Start)
	assert.Equal(t, 7, body.Windows[0].BookedGuests)
	assert.Equal(t, 3, body.Windows[0].Remaining)
	assert.True(t, body.Windows[0].Bookable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmptyCartFromRedis(t *testing.T) {
	router, _ := setupRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/carts/fresh", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "fresh", body["cart_id"])
	assert.Empty(t, body["lines"])
	assert.Equal(t, "0", body["total"])
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/reservations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
