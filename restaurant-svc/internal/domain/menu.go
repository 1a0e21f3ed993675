package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID               string           `json:"id" db:"id"`
	Name             string           `json:"name" db:"name" validate:"required"`
	Description      string           `json:"description" db:"description"`
	Price            decimal.Decimal  `json:"price" db:"price"`
	Category         string           `json:"category" db:"category" validate:"required"`
	ImageURL         string           `json:"image_url" db:"image_url"`
	Available        bool             `json:"available" db:"available"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
	OptionCategories []OptionCategory `json:"option_categories" db:"-"`
	AddOns           []AddOn          `json:"add_ons" db:"-"`
}

// OptionCategory groups mutually exclusive choices, e.g. "Size".
type OptionCategory struct {
	ID         string         `json:"id" db:"id"`
	MenuItemID string         `json:"menu_item_id" db:"menu_item_id"`
	Title      string         `json:"title" db:"title" validate:"required"`
	Required   bool           `json:"required" db:"required"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	Choices    []OptionChoice `json:"choices" db:"-" validate:"required,min=1,dive"`
}

type OptionChoice struct {
	ID         string          `json:"id" db:"id"`
	CategoryID string          `json:"category_id" db:"category_id"`
	Label      string          `json:"label" db:"label" validate:"required"`
	PriceDelta decimal.Decimal `json:"price" db:"price"`
}

type AddOn struct {
	ID         string          `json:"id" db:"id"`
	MenuItemID string          `json:"menu_item_id" db:"menu_item_id"`
	Label      string          `json:"label" db:"label" validate:"required"`
	Price      decimal.Decimal `json:"price" db:"price"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

func (m *MenuItem) OptionCategory(id string) (*OptionCategory, bool) {
	for i := range m.OptionCategories {
		if m.OptionCategories[i].ID == id {
			return &m.OptionCategories[i], true
		}
	}
	return nil, false
}

func (c *OptionCategory) Choice(id string) (*OptionChoice, bool) {
	for i := range c.Choices {
		if c.Choices[i].ID == id {
			return &c.Choices[i], true
		}
	}
	return nil, false
}

func (m *MenuItem) AddOn(id string) (*AddOn, bool) {
	for i := range m.AddOns {
		if m.AddOns[i].ID == id {
			return &m.AddOns[i], true
		}
	}
	return nil, false
}
