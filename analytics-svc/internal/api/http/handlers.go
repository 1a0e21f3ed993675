package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"savory-delights/analytics-svc/internal/domain"
	"savory-delights/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Dashboard service.DashboardInterface
}

func NewHandler(svc service.DashboardInterface) *Handler {
	return &Handler{Dashboard: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "analytics-svc"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/dashboard").Subrouter()
	api.HandleFunc("/today", h.getToday).Methods(http.MethodGet)
	api.HandleFunc("/summary", h.getSummary).Methods(http.MethodGet)
	api.HandleFunc("/popular-items", h.getPopularItems).Methods(http.MethodGet)
	api.HandleFunc("/upcoming-reservations", h.getUpcomingReservations).Methods(http.MethodGet)
	api.HandleFunc("/slot-load", h.getSlotLoad).Methods(http.MethodGet)
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dashboard.Today(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dashboard.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getPopularItems(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := h.Dashboard.PopularItems(r.Context(), r.URL.Query().Get("date"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getUpcomingReservations(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	reservations, err := h.Dashboard.UpcomingReservations(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": reservations})
}

func (h *Handler) getSlotLoad(w http.ResponseWriter, r *http.Request) {
	load, err := h.Dashboard.SlotLoad(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, load)
}

// queryLimit reads ?limit=; absent means 0, which the service treats as
// its default.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %q", domain.ErrValidation, domain.ErrInvalidLimit, raw)
	}
	return limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
