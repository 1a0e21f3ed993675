package domain

import "github.com/shopspring/decimal"

// Where a dashboard figure was read from.
const (
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// DailySummary is the dashboard headline for one UTC day. Revenue is net of
// cancelled orders.
type DailySummary struct {
	Date                  string          `json:"date"`
	OrdersPlaced          int64           `json:"orders_placed" db:"orders_placed"`
	OrdersDineIn          int64           `json:"orders_dine_in" db:"orders_dine_in"`
	OrdersTakeaway        int64           `json:"orders_takeaway" db:"orders_takeaway"`
	OrdersServed          int64           `json:"orders_served" db:"orders_served"`
	OrdersCancelled       int64           `json:"orders_cancelled" db:"orders_cancelled"`
	GrossRevenue          decimal.Decimal `json:"gross_revenue" db:"gross_revenue"`
	CancelledRevenue      decimal.Decimal `json:"cancelled_revenue" db:"cancelled_revenue"`
	Revenue               decimal.Decimal `json:"revenue"`
	ReservationsBooked    int64           `json:"reservations_booked" db:"reservations_booked"`
	ReservationsCancelled int64           `json:"reservations_cancelled" db:"reservations_cancelled"`
	ReservationsCompleted int64           `json:"reservations_completed" db:"reservations_completed"`
	GuestsBooked          int64           `json:"guests_booked" db:"guests_booked"`
	Source                string          `json:"source"`
}

type PopularItem struct {
	MenuItemID string `json:"menu_item_id" db:"menu_item_id"`
	Name       string `json:"name" db:"name"`
	Quantity   int64  `json:"quantity" db:"quantity"`
}

type PopularItems struct {
	Date   string        `json:"date"`
	Items  []PopularItem `json:"items"`
	Source string        `json:"source"`
}

type UpcomingReservation struct {
	ConfirmationID  string `json:"confirmation_id" db:"confirmation_id"`
	CustomerName    string `json:"customer_name" db:"customer_name"`
	ReservationDate string `json:"reservation_date" db:"reservation_date"`
	ReservationTime string `json:"reservation_time" db:"reservation_time"`
	GuestCount      int    `json:"guest_count" db:"guest_count"`
	SpecialRequests string `json:"special_requests" db:"special_requests"`
}

// SlotGuests is the number of booked guests at one reservation time.
type SlotGuests struct {
	Time   string `json:"time" db:"time"`
	Guests int64  `json:"guests" db:"guests"`
}

type SlotLoad struct {
	Date   string       `json:"date"`
	Slots  []SlotGuests `json:"slots"`
	Total  int64        `json:"total_guests"`
	Source string       `json:"source"`
}
