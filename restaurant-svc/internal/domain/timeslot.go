package domain

import (
	"fmt"
	"sort"
	"time"
)

// TimeSlotTemplate is a recurring weekly booking window. DayOfWeek follows
// time.Weekday: Sunday is 0.
type TimeSlotTemplate struct {
	ID          string    `json:"id" db:"id"`
	DayOfWeek   int       `json:"day_of_week" db:"day_of_week"`
	StartTime   Clock     `json:"start_time" db:"start_time"`
	EndTime     Clock     `json:"end_time" db:"end_time"`
	MaxCapacity int       `json:"max_capacity" db:"max_capacity"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (t *TimeSlotTemplate) Validate() error {
	if t.DayOfWeek < 0 || t.DayOfWeek > 6 {
		return fmt.Errorf("%w: day_of_week must be between 0 and 6, got %d", ErrValidation, t.DayOfWeek)
	}
	return validateWindow(t.StartTime, t.EndTime, t.MaxCapacity)
}

// TimeSlotException replaces every template on one calendar date.
type TimeSlotException struct {
	ID            string    `json:"id" db:"id"`
	ExceptionDate Date      `json:"exception_date" db:"exception_date"`
	StartTime     Clock     `json:"start_time" db:"start_time"`
	EndTime       Clock     `json:"end_time" db:"end_time"`
	MaxCapacity   int       `json:"max_capacity" db:"max_capacity"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
	Reason        string    `json:"reason,omitempty" db:"reason"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (e *TimeSlotException) Validate() error {
	if e.ExceptionDate.IsZero() {
		return fmt.Errorf("%w: exception_date is required", ErrInvalidDate)
	}
	return validateWindow(e.StartTime, e.EndTime, e.MaxCapacity)
}

func validateWindow(start, end Clock, capacity int) error {
	if start >= end {
		return fmt.Errorf("%w: start time %s must be before end time %s", ErrInvalidTime, start, end)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: max_capacity must not be negative", ErrValidation)
	}
	return nil
}

const (
	WindowSourceTemplate  = "template"
	WindowSourceException = "exception"
)

// Window is one bookable range on a concrete date.
type Window struct {
	Start       Clock  `json:"start_time"`
	End         Clock  `json:"end_time"`
	MaxCapacity int    `json:"max_capacity"`
	IsAvailable bool   `json:"is_available"`
	Source      string `json:"source"`
	SourceID    string `json:"source_id"`
	Reason      string `json:"reason,omitempty"`
}

// Contains reports whether t falls in [Start, End).
func (w Window) Contains(t Clock) bool {
	return t >= w.Start && t < w.End
}

func (t TimeSlotTemplate) Window() Window {
	return Window{
		Start:       t.StartTime,
		End:         t.EndTime,
		MaxCapacity: t.MaxCapacity,
		IsAvailable: t.IsAvailable,
		Source:      WindowSourceTemplate,
		SourceID:    t.ID,
	}
}

func (e TimeSlotException) Window() Window {
	return Window{
		Start:       e.StartTime,
		End:         e.EndTime,
		MaxCapacity: e.MaxCapacity,
		IsAvailable: e.IsAvailable,
		Source:      WindowSourceException,
		SourceID:    e.ID,
		Reason:      e.Reason,
	}
}

// SortWindows orders windows by start time, then end time, for display.
func SortWindows(windows []Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Start != windows[j].Start {
			return windows[i].Start < windows[j].Start
		}
		return windows[i].End < windows[j].End
	})
}

// WindowAvailability is a resolved window together with its current load.
type WindowAvailability struct {
	Window
	BookedGuests int  `json:"booked_guests"`
	Remaining    int  `json:"remaining"`
	Bookable     bool `json:"bookable"`
}
