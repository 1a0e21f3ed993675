package domain

import (
	"strconv"
	"time"

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

// Event is the message restaurant-svc writes to the events topic.
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

// DedupKey identifies one state change. Redelivered messages share it; a
// transition repeated later (cancel, re-activate, cancel again) does not.
// Events without an id fall back to the entity, transition and timestamp.
func (e Event) DedupKey() string {
	if e.EventID != "" {
		return e.Type + ":" + e.EventID
	}
	id := e.OrderNumber
	if id == "" {
		id = e.ConfirmationID
	}
	return e.Type + ":" + id + ":" + e.PreviousStatus + ">" + e.Status + "@" + strconv.FormatInt(e.Timestamp.UnixNano(), 10)
}

// Day is the UTC calendar day the event happened on.
func (e Event) Day() string {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.UTC().Format("2006-01-02")
}
