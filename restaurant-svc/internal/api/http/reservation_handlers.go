package httpapi

import (
	"fmt"
	"net/http"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/gorilla/mux"
)

type availabilityResponse struct {
	Date    string                      `json:"date"`
	Windows []domain.WindowAvailability `json:"windows"`
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		writeError(w, r, fmt.Errorf("%w: date query parameter is required", domain.ErrInvalidDate))
		return
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		writeError(w, r, err)
		return
	}
	windows, err := h.Reservations.Availability(r.Context(), date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, availabilityResponse{Date: date.String(), Windows: windows})
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	reservation, err := h.Reservations.Book(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	var filter domain.ReservationFilter
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		filter.Date = &date
	}
	filter.Status = domain.ReservationStatus(r.URL.Query().Get("status"))

	reservations, err := h.Reservations.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.Reservations.Get(r.Context(), mux.Vars(r)["confirmationId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	reservation, err := h.Reservations.UpdateStatus(r.Context(), mux.Vars(r)["confirmationId"], domain.ReservationStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) getReservationQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Reservations.QRCode(r.Context(), mux.Vars(r)["confirmationId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePNG(w, png)
}
