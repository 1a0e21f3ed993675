package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"savory-delights/api-gateway/internal/gateway"
	"savory-delights/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	RestaurantSvcURL: "http://restaurant-svc:8081",
	AnalyticsSvcURL:  "http://analytics-svc:8083/",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Upstreams(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		wantURL string
	}{
		{
			name:    "dashboard goes to analytics",
			method:  http.MethodGet,
			path:    "/api/dashboard/today",
			wantURL: "http://analytics-svc:8083/api/dashboard/today",
		},
		{
			name:    "query string is kept",
			method:  http.MethodGet,
			path:    "/api/availability?date=2024-06-03",
			wantURL: "http://restaurant-svc:8081/api/availability?date=2024-06-03",
		},
		{
			name:    "reservation booking",
			method:  http.MethodPost,
			path:    "/api/reservations",
			wantURL: "http://restaurant-svc:8081/api/reservations",
		},
		{
			name:    "order qr code",
			method:  http.MethodGet,
			path:    "/api/orders/ORD123456ABCD/qrcode",
			wantURL: "http://restaurant-svc:8081/api/orders/ORD123456ABCD/qrcode",
		},
		{
			name:    "cart line update",
			method:  http.MethodPatch,
			path:    "/api/carts/c1/lines/l1",
			wantURL: "http://restaurant-svc:8081/api/carts/c1/lines/l1",
		},
		{
			name:    "time slot exceptions",
			method:  http.MethodGet,
			path:    "/api/time-slot-exceptions",
			wantURL: "http://restaurant-svc:8081/api/time-slot-exceptions",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(testConfig, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method && req.URL.String() == testCase.wantURL
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), "ok")
		})
	}
}

func TestGateway_RouteHandler_RequestID(t *testing.T) {
	t.Run("generated when missing", func(t *testing.T) {
		mockClient := mocks.NewHTTPClient(t)
		gw := gateway.NewGateway(testConfig, mockClient)
		mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			return req.Header.Get(gateway.RequestIDHeader) != ""
		})).Return(okResponse(`[]`), nil).Once()

		rr := httptest.NewRecorder()
		gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/menu", nil))

		assert.NotEmpty(t, rr.Header().Get(gateway.RequestIDHeader))
	})

	t.Run("caller id is forwarded", func(t *testing.T) {
		mockClient := mocks.NewHTTPClient(t)
		gw := gateway.NewGateway(testConfig, mockClient)
		mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			return req.Header.Get(gateway.RequestIDHeader) == "abc-123"
		})).Return(okResponse(`[]`), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
		req.Header.Set(gateway.RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		gw.RouteHandler(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(gateway.RequestIDHeader))
	})
}

func TestGateway_RouteHandler_UpstreamStatusPassesThrough(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusConflict,
		Body:       io.NopCloser(strings.NewReader(`{"reason":"capacity_exceeded"}`)),
		Header:     make(http.Header),
	}
	mockClient.On("Do", mock.Anything).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "capacity_exceeded")
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil)

	for _, path := range []string{"/api/unknown", "/api/menus-old", "/api/invoices"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		gw.RouteHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "bad_gateway", body["reason"])
}

func TestGateway_ServesFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Savory Delights</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	router := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil).SetupRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reservations", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Savory Delights")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "console.log")
}
