package service

import (
	"context"

	"savory-delights/restaurant-svc/internal/domain"
)

type MenuReader interface {
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type CatalogRepository interface {
	MenuReader
	ListMenuItems(ctx context.Context, category string) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
	CreateOptionCategory(ctx context.Context, category *domain.OptionCategory) error
	DeleteOptionCategory(ctx context.Context, id string) (int64, error)
	CreateAddOn(ctx context.Context, addOn *domain.AddOn) error
	DeleteAddOn(ctx context.Context, id string) (int64, error)
}

// SlotSource is the read side the availability resolver needs.
type SlotSource interface {
	ExceptionsForDate(ctx context.Context, date domain.Date) ([]domain.TimeSlotException, error)
	TemplatesForWeekday(ctx context.Context, weekday int) ([]domain.TimeSlotTemplate, error)
}

type TimeSlotRepository interface {
	SlotSource
	ListTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error)
	CreateTemplate(ctx context.Context, template *domain.TimeSlotTemplate) error
	UpdateTemplate(ctx context.Context, template *domain.TimeSlotTemplate) error
	DeleteTemplate(ctx context.Context, id string) (int64, error)
	ListExceptions(ctx context.Context) ([]domain.TimeSlotException, error)
	CreateException(ctx context.Context, exception *domain.TimeSlotException) error
	DeleteException(ctx context.Context, id string) (int64, error)
}

// AdmitFunc decides, given the guests already booked in a window, whether a
// new reservation fits. It runs inside the store transaction.
type AdmitFunc func(bookedGuests int) error

type ReservationRepository interface {
	// InsertReservation counts confirmed guests in the window, calls admit and
	// inserts the reservation, all in one serializable transaction.
	InsertReservation(ctx context.Context, reservation *domain.Reservation, window domain.Window, admit AdmitFunc) error
	BookedGuests(ctx context.Context, date domain.Date, window domain.Window) (int, error)
	GetByConfirmation(ctx context.Context, confirmationID string) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	// UpdateReservationStatus changes status only if it still equals from.
	UpdateReservationStatus(ctx context.Context, confirmationID string, from, to domain.ReservationStatus) error
}

type OrderRepository interface {
	// CreateOrder writes the header and every line in one transaction.
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	// UpdateOrderStatus changes status only if it still equals from.
	UpdateOrderStatus(ctx context.Context, orderNumber string, from, to domain.OrderStatus) error
}

type CartStore interface {
	Load(ctx context.Context, cartID string) (*domain.Cart, error)
	Save(ctx context.Context, cartID string, cart *domain.Cart) error
	Clear(ctx context.Context, cartID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type CatalogServiceInterface interface {
	ListMenu(ctx context.Context, category string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
	AddOptionCategory(ctx context.Context, category *domain.OptionCategory) error
	DeleteOptionCategory(ctx context.Context, id string) error
	AddAddOn(ctx context.Context, addOn *domain.AddOn) error
	DeleteAddOn(ctx context.Context, id string) error
}

type TimeSlotServiceInterface interface {
	ListTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error)
	CreateTemplate(ctx context.Context, template *domain.TimeSlotTemplate) error
	UpdateTemplate(ctx context.Context, template *domain.TimeSlotTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
	ListExceptions(ctx context.Context, date *domain.Date) ([]domain.TimeSlotException, error)
	CreateException(ctx context.Context, exception *domain.TimeSlotException) error
	DeleteException(ctx context.Context, id string) error
}

type ReservationServiceInterface interface {
	Availability(ctx context.Context, date domain.Date) ([]domain.WindowAvailability, error)
	Book(ctx context.Context, req domain.BookingRequest) (*domain.Reservation, error)
	Get(ctx context.Context, confirmationID string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, confirmationID string, status domain.ReservationStatus) (*domain.Reservation, error)
	QRCode(ctx context.Context, confirmationID string) ([]byte, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, cartID string) (*domain.CartView, error)
	AddItem(ctx context.Context, cartID string, req domain.AddToCartRequest) (*domain.CartView, error)
	UpdateQuantity(ctx context.Context, cartID, lineID string, quantity int) (*domain.CartView, error)
	RemoveLine(ctx context.Context, cartID, lineID string) (*domain.CartView, error)
	Clear(ctx context.Context, cartID string) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, cart *domain.Cart, req domain.PlaceOrderRequest) (*domain.Order, error)
	Checkout(ctx context.Context, cartID string, req domain.PlaceOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, orderNumber string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (*domain.Order, error)
	QRCode(ctx context.Context, orderNumber string) ([]byte, error)
}
