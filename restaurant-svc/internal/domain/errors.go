package domain

import (
	"errors"
	"fmt"
)

// Error categories. Specific causes wrap one of these so callers can branch on
// either the category or the cause with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrSlotUnavailable  = errors.New("slot unavailable")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	ErrInvalidDate           = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrInvalidTime           = fmt.Errorf("%w: invalid time", ErrValidation)
	ErrInvalidQuantity       = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrUnknownOption         = fmt.Errorf("%w: unknown option", ErrValidation)
	ErrMissingRequiredOption = fmt.Errorf("%w: missing required option", ErrValidation)
	ErrEmptyCart             = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrItemUnavailable       = fmt.Errorf("%w: menu item is not available", ErrValidation)
	ErrInvalidOrderType      = fmt.Errorf("%w: invalid order type", ErrValidation)
	ErrInvalidTransition     = fmt.Errorf("%w: invalid status transition", ErrValidation)
	ErrLineNotFound          = fmt.Errorf("%w: cart line", ErrNotFound)
)

// Reason returns a short machine readable code for err, used in API responses.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrInvalidTime):
		return "invalid_time"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, ErrUnknownOption):
		return "unknown_option"
	case errors.Is(err, ErrMissingRequiredOption):
		return "missing_required_option"
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, ErrItemUnavailable):
		return "item_unavailable"
	case errors.Is(err, ErrInvalidOrderType):
		return "invalid_order_type"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "internal_error"
	}
}
