package service

import (
	"fmt"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// LinePrice is the priced form of one configured menu item.
type LinePrice struct {
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
	Selections domain.LineSelections
}

// PriceLine computes
//
//	unit = base + sum(choice deltas) + sum(add-on price * add-on quantity)
//	line = unit * quantity
//
// Selections that the item does not define fail with ErrUnknownOption.
// Required categories are not checked here; see ValidateRequired.
func PriceLine(item *domain.MenuItem, quantity int, options map[string]string, addOns map[string]int) (LinePrice, error) {
	if quantity < 1 {
		return LinePrice{}, fmt.Errorf("%w: quantity must be at least 1, got %d", domain.ErrInvalidQuantity, quantity)
	}

	unit := item.Price
	var selections domain.LineSelections

	for _, categoryID := range domain.SortedKeys(options) {
		choiceID := options[categoryID]
		category, ok := item.OptionCategory(categoryID)
		if !ok {
			return LinePrice{}, fmt.Errorf("%w: category %q is not defined on %q", domain.ErrUnknownOption, categoryID, item.ID)
		}
		choice, ok := category.Choice(choiceID)
		if !ok {
			return LinePrice{}, fmt.Errorf("%w: choice %q is not defined in category %q", domain.ErrUnknownOption, choiceID, categoryID)
		}
		unit = unit.Add(choice.PriceDelta)
		selections.Options = append(selections.Options, domain.SelectedOption{
			CategoryID:    category.ID,
			CategoryTitle: category.Title,
			ChoiceID:      choice.ID,
			ChoiceLabel:   choice.Label,
			PriceDelta:    choice.PriceDelta,
		})
	}

	for _, addOnID := range domain.SortedKeys(addOns) {
		qty := addOns[addOnID]
		if qty < 0 {
			return LinePrice{}, fmt.Errorf("%w: add-on %q quantity must not be negative", domain.ErrInvalidQuantity, addOnID)
		}
		if qty == 0 {
			continue
		}
		addOn, ok := item.AddOn(addOnID)
		if !ok {
			return LinePrice{}, fmt.Errorf("%w: add-on %q is not defined on %q", domain.ErrUnknownOption, addOnID, item.ID)
		}
		unit = unit.Add(addOn.Price.Mul(decimal.NewFromInt(int64(qty))))
		selections.AddOns = append(selections.AddOns, domain.SelectedAddOn{
			AddOnID:   addOn.ID,
			Label:     addOn.Label,
			UnitPrice: addOn.Price,
			Quantity:  qty,
		})
	}

	return LinePrice{
		UnitPrice:  unit,
		LineTotal:  unit.Mul(decimal.NewFromInt(int64(quantity))),
		Selections: selections,
	}, nil
}

// ValidateRequired checks that every required category has a selection.
// It runs at submission time, not on every cart edit.
func ValidateRequired(item *domain.MenuItem, options map[string]string) error {
	for _, category := range item.OptionCategories {
		if !category.Required {
			continue
		}
		if _, ok := options[category.ID]; !ok {
			return fmt.Errorf("%w: %q on %q", domain.ErrMissingRequiredOption, category.Title, item.Name)
		}
	}
	return nil
}

// ComputeTotals sums line totals and applies taxRate. Tax is rounded to cents.
func ComputeTotals(lines []domain.CartLine, taxRate decimal.Decimal) domain.Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return domain.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
