package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced              = "order_placed"
	EventOrderStatusChanged       = "order_status_changed"
	EventReservationBooked        = "reservation_booked"
	EventReservationStatusChanged = "reservation_status_changed"
)

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// Event is published to Kafka after a state change has been committed.
// EventID is unique per state change; consumers deduplicate on it.
type Event struct {
	EventID         string          `json:"event_id,omitempty"`
	Type            string          `json:"type"`
	OrderNumber     string          `json:"order_number,omitempty"`
	OrderType       string          `json:"order_type,omitempty"`
	ConfirmationID  string          `json:"confirmation_id,omitempty"`
	Status          string          `json:"status"`
	PreviousStatus  string          `json:"previous_status,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Items           []EventItem     `json:"items,omitempty"`
	ReservationDate string          `json:"reservation_date,omitempty"`
	ReservationTime string          `json:"reservation_time,omitempty"`
	GuestCount      int             `json:"guest_count,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// NewEventID returns a fresh identifier for one published state change.
func NewEventID() string {
	return uuid.NewString()
}

func (e Event) Key() string {
	if e.OrderNumber != "" {
		return e.OrderNumber
	}
	return e.ConfirmationID
}
