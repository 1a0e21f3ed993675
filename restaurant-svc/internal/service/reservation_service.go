package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type ReservationService struct {
	resolver  *AvailabilityResolver
	repo      ReservationRepository
	publisher EventPublisher
	qr        QRGenerator
	baseURL   string
	newID     func() string
	now       func() time.Time
}

func NewReservationService(resolver *AvailabilityResolver, repo ReservationRepository, publisher EventPublisher, qr QRGenerator, baseURL string) *ReservationService {
	return &ReservationService{
		resolver:  resolver,
		repo:      repo,
		publisher: publisher,
		qr:        qr,
		baseURL:   baseURL,
		newID:     NewConfirmationID,
		now:       time.Now,
	}
}

// WithIDGenerator replaces the confirmation id source.
func (s *ReservationService) WithIDGenerator(newID func() string) *ReservationService {
	s.newID = newID
	return s
}

// WithClock replaces the clock used to reject dates in the past.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

func (s *ReservationService) today() domain.Date {
	now := s.now().UTC()
	return domain.NewDate(now.Year(), now.Month(), now.Day())
}

// Availability resolves the windows for date, sorted by start time, with the
// guests already booked in each.
func (s *ReservationService) Availability(ctx context.Context, date domain.Date) ([]domain.WindowAvailability, error) {
	windows, err := s.resolver.Resolve(ctx, date)
	if err != nil {
		return nil, err
	}
	domain.SortWindows(windows)

	result := make([]domain.WindowAvailability, 0, len(windows))
	for _, window := range windows {
		booked, err := s.repo.BookedGuests(ctx, date, window)
		if err != nil {
			return nil, fmt.Errorf("count guests for %s %s: %w", date, window.Start, err)
		}
		remaining := window.MaxCapacity - booked
		if remaining < 0 {
			remaining = 0
		}
		result = append(result, domain.WindowAvailability{
			Window:       window,
			BookedGuests: booked,
			Remaining:    remaining,
			Bookable:     window.IsAvailable && remaining > 0,
		})
	}
	return result, nil
}

// Book validates the request, finds the available window containing the
// requested time and records a confirmed reservation if the window still has
// room for the whole party. The capacity check and the insert share one
// store transaction.
func (s *ReservationService) Book(ctx context.Context, req domain.BookingRequest) (*domain.Reservation, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if today := s.today(); date.Before(today.Time) {
		return nil, fmt.Errorf("%w: %s is before %s", domain.ErrInvalidDate, date, today)
	}
	at, err := domain.ParseClock(req.Time)
	if err != nil {
		return nil, err
	}

	windows, err := s.resolver.Resolve(ctx, date)
	if err != nil {
		return nil, err
	}
	window, ok := FindBookable(windows, at)
	if !ok {
		return nil, fmt.Errorf("%w: no open window on %s at %s", domain.ErrSlotUnavailable, date, at)
	}

	reservation := &domain.Reservation{
		ConfirmationID:  s.newID(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ReservationDate: date,
		ReservationTime: at,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
		Status:          domain.ReservationConfirmed,
	}

	admit := func(booked int) error {
		if booked+req.GuestCount > window.MaxCapacity {
			return fmt.Errorf("%w: %d of %d seats taken for %s %s-%s, %d requested",
				domain.ErrCapacityExceeded, booked, window.MaxCapacity, date, window.Start, window.End, req.GuestCount)
		}
		return nil
	}

	if err := s.repo.InsertReservation(ctx, reservation, window, admit); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			log.Warn().Str("date", date.String()).Str("time", at.String()).Int("guests", req.GuestCount).Msg("booking rejected: capacity")
		}
		return nil, err
	}

	log.Info().
		Str("confirmation_id", reservation.ConfirmationID).
		Str("date", date.String()).
		Str("time", at.String()).
		Int("guests", reservation.GuestCount).
		Msg("reservation booked")

	s.publish(ctx, domain.Event{
		Type:            domain.EventReservationBooked,
		ConfirmationID:  reservation.ConfirmationID,
		Status:          string(reservation.Status),
		ReservationDate: date.String(),
		ReservationTime: at.String(),
		GuestCount:      reservation.GuestCount,
		Timestamp:       time.Now().UTC(),
	})

	return reservation, nil
}

func (s *ReservationService) Get(ctx context.Context, confirmationID string) (*domain.Reservation, error) {
	return s.repo.GetByConfirmation(ctx, confirmationID)
}

func (s *ReservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, filter.Status)
	}
	return s.repo.ListReservations(ctx, filter)
}

// UpdateStatus applies a staff transition. The update is a compare-and-set on
// the current status, so a concurrent change surfaces as ErrConflict.
func (s *ReservationService) UpdateStatus(ctx context.Context, confirmationID string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, status)
	}

	current, err := s.repo.GetByConfirmation(ctx, confirmationID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: reservation %s cannot go from %s to %s", domain.ErrInvalidTransition, confirmationID, current.Status, status)
	}

	if err := s.repo.UpdateReservationStatus(ctx, confirmationID, current.Status, status); err != nil {
		return nil, err
	}

	previous := current.Status
	current.Status = status
	current.UpdatedAt = time.Now().UTC()

	if previous == domain.ReservationCancelled && status == domain.ReservationConfirmed {
		s.warnIfOverbooked(ctx, current)
	}

	s.publish(ctx, domain.Event{
		Type:            domain.EventReservationStatusChanged,
		ConfirmationID:  confirmationID,
		Status:          string(status),
		PreviousStatus:  string(previous),
		ReservationDate: current.ReservationDate.String(),
		ReservationTime: current.ReservationTime.String(),
		GuestCount:      current.GuestCount,
		Timestamp:       time.Now().UTC(),
	})

	return current, nil
}

// warnIfOverbooked logs when a re-activated reservation leaves its window
// holding more guests than the window's capacity. The transition itself is
// not refused; staff resolve the overbooking.
func (s *ReservationService) warnIfOverbooked(ctx context.Context, reservation *domain.Reservation) {
	logger := log.With().
		Str("confirmation_id", reservation.ConfirmationID).
		Str("date", reservation.ReservationDate.String()).
		Str("time", reservation.ReservationTime.String()).
		Logger()

	windows, err := s.resolver.Resolve(ctx, reservation.ReservationDate)
	if err != nil {
		logger.Warn().Err(err).Msg("capacity recheck skipped")
		return
	}
	for _, window := range windows {
		if !window.Contains(reservation.ReservationTime) {
			continue
		}
		booked, err := s.repo.BookedGuests(ctx, reservation.ReservationDate, window)
		if err != nil {
			logger.Warn().Err(err).Msg("capacity recheck skipped")
			return
		}
		if booked > window.MaxCapacity {
			logger.Warn().
				Int("booked_guests", booked).
				Int("max_capacity", window.MaxCapacity).
				Msg("re-activated reservation overbooks window")
		}
		return
	}
	logger.Warn().Msg("re-activated reservation falls outside every window")
}

func (s *ReservationService) QRCode(ctx context.Context, confirmationID string) ([]byte, error) {
	reservation, err := s.repo.GetByConfirmation(ctx, confirmationID)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(fmt.Sprintf("%s/reservations/%s", s.baseURL, reservation.ConfirmationID))
}

func (s *ReservationService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if event.EventID == "" {
		event.EventID = domain.NewEventID()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("key", event.Key()).Msg("failed to publish event")
	}
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
