package tests

import (
	"savory-delights/restaurant-svc/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// steakItem is a menu item with a required size, an optional sauce and two add-ons.
func steakItem() *domain.MenuItem {
	return &domain.MenuItem{
		ID:        "steak",
		Name:      "Ribeye Steak",
		Price:     dec("100"),
		Category:  "mains",
		Available: true,
		OptionCategories: []domain.OptionCategory{
			{
				ID:       "size",
				Title:    "Size",
				Required: true,
				Choices: []domain.OptionChoice{
					{ID: "regular", Label: "Regular", PriceDelta: dec("0")},
					{ID: "large", Label: "Large", PriceDelta: dec("20")},
				},
			},
			{
				ID:    "sauce",
				Title: "Sauce",
				Choices: []domain.OptionChoice{
					{ID: "pepper", Label: "Pepper", PriceDelta: dec("0")},
					{ID: "bearnaise", Label: "Bearnaise", PriceDelta: dec("3.50")},
				},
			},
		},
		AddOns: []domain.AddOn{
			{ID: "egg", Label: "Fried egg", Price: dec("15")},
			{ID: "fries", Label: "Fries", Price: dec("4.25")},
		},
	}
}

func saladItem() *domain.MenuItem {
	return &domain.MenuItem{
		ID:        "salad",
		Name:      "Garden Salad",
		Price:     dec("9.50"),
		Category:  "starters",
		Available: true,
	}
}
