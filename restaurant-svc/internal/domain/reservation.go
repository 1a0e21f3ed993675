package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationConfirmed: {ReservationCompleted, ReservationCancelled},
	ReservationCancelled: {ReservationConfirmed},
}

// CanTransition reports whether a reservation may move from s to next.
// Completed is terminal.
func (s ReservationStatus) CanTransition(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

type Reservation struct {
	ID              string            `json:"id" db:"id"`
	ConfirmationID  string            `json:"confirmation_id" db:"confirmation_id"`
	CustomerName    string            `json:"customer_name" db:"customer_name"`
	CustomerEmail   string            `json:"customer_email" db:"customer_email"`
	CustomerPhone   string            `json:"customer_phone" db:"customer_phone"`
	ReservationDate Date              `json:"reservation_date" db:"reservation_date"`
	ReservationTime Clock             `json:"reservation_time" db:"reservation_time"`
	GuestCount      int               `json:"guest_count" db:"guest_count"`
	SpecialRequests string            `json:"special_requests,omitempty" db:"special_requests"`
	Status          ReservationStatus `json:"status" db:"status"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}

// BookingRequest is the guest-facing reservation form.
type BookingRequest struct {
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	GuestCount      int    `json:"guest_count" validate:"min=1"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	SpecialRequests string `json:"special_requests"`
}

type ReservationFilter struct {
	Date   *Date
	Status ReservationStatus
}
