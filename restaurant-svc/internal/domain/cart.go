package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps the quantity of a single cart line, merges included.
const MaxLineQuantity = 99

// CartLine is one configured quantity of one menu item.
type CartLine struct {
	ID              string            `json:"id"`
	MenuItemID      string            `json:"menu_item_id"`
	Name            string            `json:"name"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	SelectedAddOns  map[string]int    `json:"selected_add_ons,omitempty"`
	UnitPrice       decimal.Decimal   `json:"unit_price"`
	LineTotal       decimal.Decimal   `json:"line_total"`
}

// Cart is an in-progress set of lines. It is passed explicitly through the
// pricing and ordering operations and persisted by a CartStore.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type CartView struct {
	CartID string     `json:"cart_id"`
	Lines  []CartLine `json:"lines"`
	Totals
}

type AddToCartRequest struct {
	MenuItemID      string            `json:"menu_item_id" validate:"required"`
	Quantity        int               `json:"quantity" validate:"min=1,max=99"`
	SelectedOptions map[string]string `json:"selected_options"`
	SelectedAddOns  map[string]int    `json:"selected_add_ons"`
}

var lineNamespace = uuid.MustParse("5b0d6c2e-3f4a-4c8e-9a51-7d2f0e8b1c43")

// LineKey identifies a logical cart line: two lines with the same item,
// options and positive add-on quantities share a key.
func LineKey(menuItemID string, options map[string]string, addOns map[string]int) string {
	var b strings.Builder
	b.WriteString(menuItemID)

	b.WriteString("|o:")
	for i, category := range SortedKeys(options) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(category + "=" + options[category])
	}

	b.WriteString("|a:")
	first := true
	for _, id := range SortedKeys(addOns) {
		if addOns[id] == 0 {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(id + "=" + strconv.Itoa(addOns[id]))
	}

	return uuid.NewSHA1(lineNamespace, []byte(b.String())).String()
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeAddOns drops zero quantities, which mean the same as absence.
func NormalizeAddOns(addOns map[string]int) map[string]int {
	if len(addOns) == 0 {
		return nil
	}
	out := make(map[string]int, len(addOns))
	for id, qty := range addOns {
		if qty != 0 {
			out[id] = qty
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// CheckAdd reports whether adding line would push the merged line past
// MaxLineQuantity.
func (c *Cart) CheckAdd(line CartLine) error {
	id := LineKey(line.MenuItemID, line.SelectedOptions, NormalizeAddOns(line.SelectedAddOns))
	total := line.Quantity
	for _, existing := range c.Lines {
		if existing.ID == id {
			total += existing.Quantity
			break
		}
	}
	if total > MaxLineQuantity {
		return fmt.Errorf("%w: line quantity %d exceeds %d", ErrInvalidQuantity, total, MaxLineQuantity)
	}
	return nil
}

// Add merges line into an existing line with the same key or appends it.
func (c *Cart) Add(line CartLine) CartLine {
	line.SelectedAddOns = NormalizeAddOns(line.SelectedAddOns)
	if len(line.SelectedOptions) == 0 {
		line.SelectedOptions = nil
	}
	line.ID = LineKey(line.MenuItemID, line.SelectedOptions, line.SelectedAddOns)

	for i := range c.Lines {
		if c.Lines[i].ID != line.ID {
			continue
		}
		existing := &c.Lines[i]
		existing.Quantity += line.Quantity
		existing.UnitPrice = line.UnitPrice
		existing.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(existing.Quantity)))
		return *existing
	}

	line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
	c.Lines = append(c.Lines, line)
	return line
}

// SetQuantity updates a line; a quantity of zero removes it.
func (c *Cart) SetQuantity(lineID string, quantity int) error {
	if quantity < 0 || quantity > MaxLineQuantity {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	for i := range c.Lines {
		if c.Lines[i].ID != lineID {
			continue
		}
		if quantity == 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
		c.Lines[i].Quantity = quantity
		c.Lines[i].LineTotal = c.Lines[i].UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		return nil
	}
	return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
}

func (c *Cart) Remove(lineID string) error {
	return c.SetQuantity(lineID, 0)
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
