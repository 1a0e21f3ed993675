package httpapi

import (
	"net/http"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListMenu(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.GetMenuItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := decode(r, &item); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Catalog.CreateMenuItem(r.Context(), &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := decode(r, &item); err != nil {
		writeError(w, r, err)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.Catalog.UpdateMenuItem(r.Context(), &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteMenuItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOptionCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.OptionCategory
	if err := decode(r, &category); err != nil {
		writeError(w, r, err)
		return
	}
	category.MenuItemID = mux.Vars(r)["id"]
	if err := h.Catalog.AddOptionCategory(r.Context(), &category); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) deleteOptionCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteOptionCategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createAddOn(w http.ResponseWriter, r *http.Request) {
	var addOn domain.AddOn
	if err := decode(r, &addOn); err != nil {
		writeError(w, r, err)
		return
	}
	addOn.MenuItemID = mux.Vars(r)["id"]
	if err := h.Catalog.AddAddOn(r.Context(), &addOn); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, addOn)
}

func (h *Handler) deleteAddOn(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteAddOn(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
