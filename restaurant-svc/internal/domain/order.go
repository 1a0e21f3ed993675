package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeaway OrderType = "takeaway"
)

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeaway
}

type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderNew:       {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderServed, OrderCancelled},
}

// CanTransition allows forward progression new -> preparing -> ready -> served
// and cancellation from any state before served. Served and cancelled are terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderNew, OrderPreparing, OrderReady, OrderServed, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            string          `json:"id" db:"id"`
	OrderNumber   string          `json:"order_number" db:"order_number"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerEmail string          `json:"customer_email" db:"customer_email"`
	CustomerPhone string          `json:"customer_phone,omitempty" db:"customer_phone"`
	OrderType     OrderType       `json:"order_type" db:"order_type"`
	Status        OrderStatus     `json:"status" db:"status"`
	Subtotal      decimal.Decimal `json:"subtotal" db:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount" db:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	Notes         string          `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
	Lines         []OrderLine     `json:"lines" db:"-"`
}

// OrderLine is the frozen record of a cart line. UnitPrice and Selections
// are copied at placement time and never recomputed from the catalog.
type OrderLine struct {
	ID         string          `json:"id" db:"id"`
	OrderID    string          `json:"order_id" db:"order_id"`
	MenuItemID string          `json:"menu_item_id" db:"menu_item_id"`
	ItemName   string          `json:"item_name" db:"item_name"`
	Quantity   int             `json:"quantity" db:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" db:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total" db:"line_total"`
	Selections LineSelections  `json:"selections" db:"selections"`
}

type SelectedOption struct {
	CategoryID    string          `json:"category_id"`
	CategoryTitle string          `json:"category_title"`
	ChoiceID      string          `json:"choice_id"`
	ChoiceLabel   string          `json:"choice_label"`
	PriceDelta    decimal.Decimal `json:"price_delta"`
}

type SelectedAddOn struct {
	AddOnID   string          `json:"add_on_id"`
	Label     string          `json:"label"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineSelections is stored as JSONB next to the order line.
type LineSelections struct {
	Options []SelectedOption `json:"options"`
	AddOns  []SelectedAddOn  `json:"add_ons"`
}

func (s LineSelections) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *LineSelections) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = LineSelections{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into LineSelections", src)
	}
	return json.Unmarshal(raw, s)
}

type PlaceOrderRequest struct {
	OrderType     OrderType `json:"order_type" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone"`
	Notes         string    `json:"notes"`
}

type OrderFilter struct {
	Status    OrderStatus
	OrderType OrderType
	Limit     int
}
