package tests

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"savory-delights/restaurant-svc/internal/domain"
	"savory-delights/restaurant-svc/internal/mocks"
	"savory-delights/restaurant-svc/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingRequest(guests int, at string) domain.BookingRequest {
	return domain.BookingRequest{
		Date:          "2024-06-03",
		Time:          at,
		GuestCount:    guests,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+44 20 7946 0000",
	}
}

// admitWith simulates a store that already holds booked guests in the window.
func admitWith(booked int) func(context.Context, *domain.Reservation, domain.Window, service.AdmitFunc) error {
	return func(_ context.Context, _ *domain.Reservation, _ domain.Window, admit service.AdmitFunc) error {
		return admit(booked)
	}
}

func newReservationService(t *testing.T) (*service.ReservationService, *mocks.TimeSlotRepository, *mocks.ReservationRepository, *mocks.EventPublisher) {
	slots := mocks.NewTimeSlotRepository(t)
	repo := mocks.NewReservationRepository(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewReservationService(service.NewAvailabilityResolver(slots), repo, publisher, qr, "http://localhost:8080").
		WithIDGenerator(func() string { return "RESTEST00001" }).
		WithClock(func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) })
	return svc, slots, repo, publisher
}

func TestReservationService_BookCapacity(t *testing.T) {
	tests := []struct {
		name    string
		booked  int
		guests  int
		wantErr error
	}{
		{name: "empty window", booked: 0, guests: 4},
		{name: "exactly at capacity", booked: 6, guests: 4},
		{name: "one over capacity", booked: 6, guests: 5, wantErr: domain.ErrCapacityExceeded},
		{name: "party larger than window", booked: 0, guests: 11, wantErr: domain.ErrCapacityExceeded},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			svc, slots, repo, publisher := newReservationService(t)

			slots.On("ExceptionsForDate", ctx, monday).Return([]domain.TimeSlotException{}, nil).Once()
			slots.On("TemplatesForWeekday", ctx, 1).Return(mondayTemplates(), nil).Once()
			repo.On("InsertReservation", ctx, mock.AnythingOfType("*domain.Reservation"), mock.AnythingOfType("domain.Window"), mock.Anything).
				Return(admitWith(testCase.booked)).Once()
			if testCase.wantErr == nil {
				publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventReservationBooked && e.ConfirmationID == "RESTEST00001" && e.EventID != ""
				})).Return(nil).Once()
			}

			res, err := svc.Book(ctx, bookingRequest(testCase.guests, "19:00"))

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "RESTEST00001", res.ConfirmationID)
			assert.Equal(t, domain.ReservationConfirmed, res.Status)
			assert.Equal(t, testCase.guests, res.GuestCount)
			assert.Equal(t, "19:00", res.ReservationTime.String())
		})
	}
}

func TestReservationService_BookUsesContainingWindow(t *testing.T) {
	ctx := context.Background()
	svc, slots, repo, publisher := newReservationService(t)

	slots.On("ExceptionsForDate", ctx, monday).Return(nil, nil).Once()
	slots.On("TemplatesForWeekday", ctx, 1).Return(mondayTemplates(), nil).Once()
	repo.On("InsertReservation", ctx, mock.Anything, mock.MatchedBy(func(w domain.Window) bool {
		return w.SourceID == "lunch" && w.MaxCapacity == 20
	}), mock.Anything).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	res, err := svc.Book(ctx, bookingRequest(2, "13:59"))

	require.NoError(t, err, "publish failures must not fail a committed booking")
	assert.Equal(t, "13:59", res.ReservationTime.String())
}

func TestReservationService_BookRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       domain.BookingRequest
		setupMock func(*mocks.TimeSlotRepository)
		wantErr   error
	}{
		{
			name:      "bad date",
			req:       func() domain.BookingRequest { r := bookingRequest(2, "19:00"); r.Date = "03/06/2024"; return r }(),
			setupMock: func(*mocks.TimeSlotRepository) {},
			wantErr:   domain.ErrInvalidDate,
		},
		{
			name:      "date in the past",
			req:       func() domain.BookingRequest { r := bookingRequest(2, "19:00"); r.Date = "2024-05-31"; return r }(),
			setupMock: func(*mocks.TimeSlotRepository) {},
			wantErr:   domain.ErrInvalidDate,
		},
		{
			name:      "bad time",
			req:       bookingRequest(2, "7pm"),
			setupMock: func(*mocks.TimeSlotRepository) {},
			wantErr:   domain.ErrInvalidTime,
		},
		{
			name:      "invalid email",
			req:       func() domain.BookingRequest { r := bookingRequest(2, "19:00"); r.CustomerEmail = "nope"; return r }(),
			setupMock: func(*mocks.TimeSlotRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:      "no guests",
			req:       bookingRequest(0, "19:00"),
			setupMock: func(*mocks.TimeSlotRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name: "outside every window",
			req:  bookingRequest(2, "16:00"),
			setupMock: func(m *mocks.TimeSlotRepository) {
				m.On("ExceptionsForDate", ctx, monday).Return(nil, nil).Once()
				m.On("TemplatesForWeekday", ctx, 1).Return(mondayTemplates(), nil).Once()
			},
			wantErr: domain.ErrSlotUnavailable,
		},
		{
			name: "window closed by exception",
			req:  bookingRequest(1, "18:30"),
			setupMock: func(m *mocks.TimeSlotRepository) {
				m.On("ExceptionsForDate", ctx, monday).Return([]domain.TimeSlotException{
					{ID: "closed", ExceptionDate: monday, StartTime: domain.NewClock(18, 0), EndTime: domain.NewClock(20, 0), MaxCapacity: 4},
				}, nil).Once()
			},
			wantErr: domain.ErrSlotUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, slots, repo, _ := newReservationService(t)
			testCase.setupMock(slots)

			res, err := svc.Book(ctx, testCase.req)

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, res)
			repo.AssertNotCalled(t, "InsertReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReservationService_Availability(t *testing.T) {
	ctx := context.Background()
	svc, slots, repo, _ := newReservationService(t)

	slots.On("ExceptionsForDate", ctx, monday).Return(nil, nil).Once()
	slots.On("TemplatesForWeekday", ctx, 1).Return(mondayTemplates(), nil).Once()
	repo.On("BookedGuests", ctx, monday, mock.MatchedBy(func(w domain.Window) bool { return w.SourceID == "lunch" })).Return(5, nil).Once()
	repo.On("BookedGuests", ctx, monday, mock.MatchedBy(func(w domain.Window) bool { return w.SourceID == "dinner" })).Return(10, nil).Once()

	windows, err := svc.Availability(ctx, monday)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	assert.Equal(t, "lunch", windows[0].SourceID)
	assert.Equal(t, 15, windows[0].Remaining)
	assert.True(t, windows[0].Bookable)

	assert.Equal(t, "dinner", windows[1].SourceID)
	assert.Equal(t, 0, windows[1].Remaining)
	assert.False(t, windows[1].Bookable)
}

func TestReservationService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.ReservationStatus
		next      domain.ReservationStatus
		updateErr error
		wantErr   error
	}{
		{name: "complete", current: domain.ReservationConfirmed, next: domain.ReservationCompleted},
		{name: "cancel", current: domain.ReservationConfirmed, next: domain.ReservationCancelled},
		{name: "reactivate", current: domain.ReservationCancelled, next: domain.ReservationConfirmed},
		{name: "completed is terminal", current: domain.ReservationCompleted, next: domain.ReservationConfirmed, wantErr: domain.ErrInvalidTransition},
		{name: "cancelled cannot complete", current: domain.ReservationCancelled, next: domain.ReservationCompleted, wantErr: domain.ErrInvalidTransition},
		{name: "unknown status", current: domain.ReservationConfirmed, next: "seated", wantErr: domain.ErrValidation},
		{name: "lost race", current: domain.ReservationConfirmed, next: domain.ReservationCancelled, updateErr: domain.ErrConflict, wantErr: domain.ErrConflict},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			svc, slots, repo, publisher := newReservationService(t)

			if testCase.next.Valid() {
				repo.On("GetByConfirmation", ctx, "RES1").Return(&domain.Reservation{
					ConfirmationID:  "RES1",
					Status:          testCase.current,
					ReservationDate: monday,
					ReservationTime: domain.NewClock(19, 0),
					GuestCount:      2,
				}, nil).Once()
			}
			if testCase.current.CanTransition(testCase.next) {
				repo.On("UpdateReservationStatus", ctx, "RES1", testCase.current, testCase.next).Return(testCase.updateErr).Once()
			}
			if testCase.wantErr == nil && testCase.current == domain.ReservationCancelled {
				slots.On("ExceptionsForDate", ctx, monday).Return(nil, nil).Once()
				slots.On("TemplatesForWeekday", ctx, 1).Return(mondayTemplates(), nil).Once()
				repo.On("BookedGuests", ctx, monday, mock.AnythingOfType("domain.Window")).Return(2, nil).Once()
			}
			if testCase.wantErr == nil {
				publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventReservationStatusChanged && e.PreviousStatus == string(testCase.current)
				})).Return(nil).Once()
			}

			res, err := svc.UpdateStatus(ctx, "RES1", testCase.next)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.next, res.Status)
		})
	}
}

func TestReservationService_ReactivationCapacityWarning(t *testing.T) {
	tests := []struct {
		name     string
		booked   int
		wantWarn bool
	}{
		{name: "within capacity", booked: 10},
		{name: "over capacity", booked: 12, wantWarn: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var buf bytes.Buffer
			previous := log.Logger
			log.Logger = zerolog.New(&buf)
			t.Cleanup(func() { log.Logger = previous })

			ctx := context.Background()
			svc, slots, repo, publisher := newReservationService(t)

			repo.On("GetByConfirmation", ctx, "RES1").Return(&domain.Reservation{
				ConfirmationID:  "RES1",
				Status:          domain.ReservationCancelled,
				ReservationDate: monday,
				ReservationTime: domain.NewClock(19, 0),
				GuestCount:      4,
			}, nil).Once()
			repo.On("UpdateReservationStatus", ctx, "RES1", domain.ReservationCancelled, domain.ReservationConfirmed).Return(nil).Once()
			slots.On("ExceptionsForDate", ctx, monday).Return(nil, nil).Once()
			slots.On("TemplatesForWeekday", ctx, 1).Return(mondayTemplates(), nil).Once()
			repo.On("BookedGuests", ctx, monday, mock.MatchedBy(func(w domain.Window) bool {
				return w.SourceID == "dinner"
			})).Return(testCase.booked, nil).Once()
			publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

			res, err := svc.UpdateStatus(ctx, "RES1", domain.ReservationConfirmed)

			require.NoError(t, err, "re-activation is never refused for capacity")
			assert.Equal(t, domain.ReservationConfirmed, res.Status)
			if testCase.wantWarn {
				assert.Contains(t, buf.String(), "re-activated reservation overbooks window")
				assert.Contains(t, buf.String(), `"booked_guests":12`)
			} else {
				assert.NotContains(t, buf.String(), "overbooks")
			}
		})
	}
}

func TestReservationService_QRCode(t *testing.T) {
	ctx := context.Background()
	slots := mocks.NewTimeSlotRepository(t)
	repo := mocks.NewReservationRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewReservationService(service.NewAvailabilityResolver(slots), repo, nil, qr, "https://savory.example")

	repo.On("GetByConfirmation", ctx, "RES1").Return(&domain.Reservation{ConfirmationID: "RES1"}, nil).Once()
	qr.On("Generate", "https://savory.example/reservations/RES1").Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(ctx, "RES1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestConfirmationIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := service.NewConfirmationID()
		assert.Len(t, id, 12)
		assert.Regexp(t, `^RES[0-9A-F]{9}$`, id)
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}
