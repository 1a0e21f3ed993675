package domain

// Redis layout written by agg-svc.
const (
	DailyKeyPrefix = "stats:daily:"
	ItemsKeyPrefix = "stats:items:"
	SlotsKeyPrefix = "stats:slots:"
	ItemNamesKey   = "stats:item-names"
)

const (
	FieldOrdersPlaced          = "orders_placed"
	FieldOrdersDineIn          = "orders_dine_in"
	FieldOrdersTakeaway        = "orders_takeaway"
	FieldOrdersServed          = "orders_served"
	FieldOrdersCancelled       = "orders_cancelled"
	FieldRevenueCents          = "revenue_cents"
	FieldCancelledCents        = "cancelled_cents"
	FieldReservationsBooked    = "reservations_booked"
	FieldReservationsCancelled = "reservations_cancelled"
	FieldReservationsCompleted = "reservations_completed"
	FieldGuestsBooked          = "guests_booked"
)

func DailyKey(day string) string { return DailyKeyPrefix + day }
func ItemsKey(day string) string { return ItemsKeyPrefix + day }
func SlotsKey(day string) string { return SlotsKeyPrefix + day }
