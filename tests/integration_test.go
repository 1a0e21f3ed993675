package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests drive a running stack through the gateway. Set
// INTEGRATION_BASE_URL (e.g. http://localhost:8080) to enable them.
func baseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("INTEGRATION_BASE_URL")
	if url == "" {
		t.Skip("INTEGRATION_BASE_URL not set")
	}
	return url
}

var client = &http.Client{Timeout: 10 * time.Second}

func call(t *testing.T, method, url string, payload any, out any) int {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func TestReservationFlow(t *testing.T) {
	base := baseURL(t)
	// Far enough ahead that no other run has booked it.
	date := time.Now().UTC().AddDate(0, 0, 30+int(uuid.New().ID()%300))
	day := date.Format("2006-01-02")

	var template map[string]any
	status := call(t, http.MethodPost, base+"/api/time-slots", map[string]any{
		"day_of_week":  int(date.Weekday()),
		"start_time":   "18:00",
		"end_time":     "20:00",
		"max_capacity": 6,
		"is_available": true,
	}, &template)
	require.Equal(t, http.StatusCreated, status)
	t.Cleanup(func() { call(t, http.MethodDelete, base+"/api/time-slots/"+template["id"].(string), nil, nil) })

	booking := map[string]any{
		"date":           day,
		"time":           "18:30",
		"guest_count":    4,
		"customer_name":  "Integration Guest",
		"customer_email": "guest@example.com",
		"customer_phone": "555-0100",
	}
	var reservation map[string]any
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, base+"/api/reservations", booking, &reservation))
	confirmation := reservation["confirmation_id"].(string)
	assert.NotEmpty(t, confirmation)

	booking["guest_count"] = 3
	var rejection map[string]string
	assert.Equal(t, http.StatusConflict, call(t, http.MethodPost, base+"/api/reservations", booking, &rejection))
	assert.Equal(t, "capacity_exceeded", rejection["reason"])

	var cancelled map[string]any
	require.Equal(t, http.StatusOK, call(t, http.MethodPatch, base+"/api/reservations/"+confirmation+"/status",
		map[string]string{"status": "cancelled"}, &cancelled))
	assert.Equal(t, "cancelled", cancelled["status"])

	assert.Equal(t, http.StatusCreated, call(t, http.MethodPost, base+"/api/reservations", booking, nil))
}

func TestCartToOrderFlow(t *testing.T) {
	base := baseURL(t)

	var item map[string]any
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, base+"/api/menu", map[string]any{
		"name":      "Integration Soup",
		"price":     "6.50",
		"category":  "starters",
		"available": true,
	}, &item))
	itemID := item["id"].(string)
	t.Cleanup(func() { call(t, http.MethodDelete, base+"/api/menu/"+itemID, nil, nil) })

	cartID := uuid.NewString()
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/api/carts/"+cartID+"/lines", map[string]any{
		"menu_item_id": itemID,
		"quantity":     2,
	}, nil))

	var order map[string]any
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, base+"/api/carts/"+cartID+"/checkout", map[string]any{
		"order_type":     "takeaway",
		"customer_name":  "Integration Diner",
		"customer_email": "diner@example.com",
	}, &order))
	assert.Regexp(t, `^ORD[0-9]{6}[0-9A-F]{4}$`, order["order_number"])
	assert.Equal(t, "13", order["subtotal"])

	var cart map[string]any
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/api/carts/"+cartID, nil, &cart))
	assert.Empty(t, cart["lines"])

	var summary map[string]any
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/api/dashboard/today", nil, &summary))
	assert.Contains(t, []any{"redis", "postgres"}, summary["source"])
}
