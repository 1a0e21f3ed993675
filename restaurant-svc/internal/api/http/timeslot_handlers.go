package httpapi

import (
	"net/http"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.TimeSlots.ListTemplates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var template domain.TimeSlotTemplate
	if err := decode(r, &template); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.TimeSlots.CreateTemplate(r.Context(), &template); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, template)
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var template domain.TimeSlotTemplate
	if err := decode(r, &template); err != nil {
		writeError(w, r, err)
		return
	}
	template.ID = mux.Vars(r)["id"]
	if err := h.TimeSlots.UpdateTemplate(r.Context(), &template); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, template)
}

func (h *Handler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.TimeSlots.DeleteTemplate(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listExceptions(w http.ResponseWriter, r *http.Request) {
	var date *domain.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		date = &parsed
	}
	exceptions, err := h.TimeSlots.ListExceptions(r.Context(), date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exceptions)
}

func (h *Handler) createException(w http.ResponseWriter, r *http.Request) {
	var exception domain.TimeSlotException
	if err := decode(r, &exception); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.TimeSlots.CreateException(r.Context(), &exception); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, exception)
}

func (h *Handler) deleteException(w http.ResponseWriter, r *http.Request) {
	if err := h.TimeSlots.DeleteException(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
