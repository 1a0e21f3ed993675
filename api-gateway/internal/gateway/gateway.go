package gateway

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	RestaurantSvcURL string
	AnalyticsSvcURL  string
	FrontendDir      string
}

// restaurantPrefixes are the /api paths owned by restaurant-svc.
var restaurantPrefixes = []string{
	"/api/menu",
	"/api/option-categories",
	"/api/add-ons",
	"/api/time-slots",
	"/api/time-slot-exceptions",
	"/api/availability",
	"/api/reservations",
	"/api/carts",
	"/api/orders",
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

// ProxyRequest forwards r to the same path on targetURL and streams the
// upstream response back unchanged.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to build upstream request")
		writeError(w, http.StatusInternalServerError, "internal server error", "internal_error")
		return
	}
	req.Header = r.Header.Clone()

	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		req.Header.Set("X-Forwarded-For", host)
	}

	log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("upstream", targetURL).
		Str("request_id", requestID).Msg("proxy")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("upstream", targetURL).Str("request_id", requestID).Msg("upstream unreachable")
		writeError(w, http.StatusBadGateway, "upstream service unavailable", "bad_gateway")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.Header().Set(RequestIDHeader, requestID)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Msg("failed to copy upstream response")
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if path == "/api/dashboard" || strings.HasPrefix(path, "/api/dashboard/") {
		g.ProxyRequest(w, r, g.config.AnalyticsSvcURL)
		return
	}

	for _, prefix := range restaurantPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			g.ProxyRequest(w, r, g.config.RestaurantSvcURL)
			return
		}
	}

	if strings.HasPrefix(path, "/api/") {
		log.Warn().Str("method", r.Method).Str("path", path).Msg("unmatched api route")
		writeError(w, http.StatusNotFound, "API route not found", "not_found")
		return
	}

	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods(http.MethodGet)
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func writeError(w http.ResponseWriter, status int, message, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "reason": reason})
}
