package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"savory-delights/restaurant-svc/internal/domain"
	"savory-delights/restaurant-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog      service.CatalogServiceInterface
	TimeSlots    service.TimeSlotServiceInterface
	Reservations service.ReservationServiceInterface
	Carts        service.CartServiceInterface
	Orders       service.OrderServiceInterface
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	timeSlots service.TimeSlotServiceInterface,
	reservations service.ReservationServiceInterface,
	carts service.CartServiceInterface,
	orders service.OrderServiceInterface,
) *Handler {
	return &Handler{
		Catalog:      catalog,
		TimeSlots:    timeSlots,
		Reservations: reservations,
		Carts:        carts,
		Orders:       orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu/{id}/option-categories", h.createOptionCategory).Methods("POST")
	r.HandleFunc("/api/menu/{id}/add-ons", h.createAddOn).Methods("POST")
	r.HandleFunc("/api/option-categories/{id}", h.deleteOptionCategory).Methods("DELETE")
	r.HandleFunc("/api/add-ons/{id}", h.deleteAddOn).Methods("DELETE")

	r.HandleFunc("/api/time-slots", h.listTemplates).Methods("GET")
	r.HandleFunc("/api/time-slots", h.createTemplate).Methods("POST")
	r.HandleFunc("/api/time-slots/{id}", h.updateTemplate).Methods("PUT")
	r.HandleFunc("/api/time-slots/{id}", h.deleteTemplate).Methods("DELETE")
	r.HandleFunc("/api/time-slot-exceptions", h.listExceptions).Methods("GET")
	r.HandleFunc("/api/time-slot-exceptions", h.createException).Methods("POST")
	r.HandleFunc("/api/time-slot-exceptions/{id}", h.deleteException).Methods("DELETE")

	r.HandleFunc("/api/availability", h.getAvailability).Methods("GET")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations", h.listReservations).Methods("GET")
	r.HandleFunc("/api/reservations/{confirmationId}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{confirmationId}/status", h.updateReservationStatus).Methods("PATCH")
	r.HandleFunc("/api/reservations/{confirmationId}/qrcode", h.getReservationQRCode).Methods("GET")

	r.HandleFunc("/api/carts/{cartId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/carts/{cartId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/carts/{cartId}/lines", h.addCartLine).Methods("POST")
	r.HandleFunc("/api/carts/{cartId}/lines/{lineId}", h.updateCartLine).Methods("PATCH")
	r.HandleFunc("/api/carts/{cartId}/lines/{lineId}", h.removeCartLine).Methods("DELETE")
	r.HandleFunc("/api/carts/{cartId}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{orderNumber}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{orderNumber}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{orderNumber}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// decode reads a JSON body; malformed input is a validation failure.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %w", domain.ErrValidation, err)
	}
	return nil
}

type statusRequest struct {
	Status string `json:"status"`
}
