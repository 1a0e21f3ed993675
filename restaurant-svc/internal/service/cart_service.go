package service

import (
	"context"
	"fmt"
	"strings"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CartService struct {
	store   CartStore
	menu    MenuReader
	taxRate decimal.Decimal
}

func NewCartService(store CartStore, menu MenuReader, taxRate decimal.Decimal) *CartService {
	return &CartService{store: store, menu: menu, taxRate: taxRate}
}

func (s *CartService) Get(ctx context.Context, cartID string) (*domain.CartView, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.view(cartID, cart), nil
}

// AddItem prices the configured item against the current catalog and merges
// it into the cart. Required option categories are enforced at checkout.
func (s *CartService) AddItem(ctx context.Context, cartID string, req domain.AddToCartRequest) (*domain.CartView, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	item, err := s.menu.GetMenuItem(ctx, req.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemUnavailable, item.Name)
	}

	price, err := PriceLine(item, req.Quantity, req.SelectedOptions, req.SelectedAddOns)
	if err != nil {
		return nil, err
	}

	line := domain.CartLine{
		MenuItemID:      item.ID,
		Name:            item.Name,
		Quantity:        req.Quantity,
		SelectedOptions: req.SelectedOptions,
		SelectedAddOns:  req.SelectedAddOns,
		UnitPrice:       price.UnitPrice,
	}
	if err := cart.CheckAdd(line); err != nil {
		return nil, err
	}
	line = cart.Add(line)

	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return nil, err
	}

	log.Debug().Str("cart_id", cartID).Str("line_id", line.ID).Int("quantity", line.Quantity).Msg("cart line added")
	return s.view(cartID, cart), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartID, lineID string, quantity int) (*domain.CartView, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := cart.SetQuantity(lineID, quantity); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return nil, err
	}
	return s.view(cartID, cart), nil
}

func (s *CartService) RemoveLine(ctx context.Context, cartID, lineID string) (*domain.CartView, error) {
	return s.UpdateQuantity(ctx, cartID, lineID, 0)
}

func (s *CartService) Clear(ctx context.Context, cartID string) error {
	if err := checkCartID(cartID); err != nil {
		return err
	}
	return s.store.Clear(ctx, cartID)
}

func (s *CartService) load(ctx context.Context, cartID string) (*domain.Cart, error) {
	if err := checkCartID(cartID); err != nil {
		return nil, err
	}
	return s.store.Load(ctx, cartID)
}

func (s *CartService) view(cartID string, cart *domain.Cart) *domain.CartView {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return &domain.CartView{
		CartID: cartID,
		Lines:  lines,
		Totals: ComputeTotals(lines, s.taxRate),
	}
}

func checkCartID(cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return fmt.Errorf("%w: cart id is required", domain.ErrValidation)
	}
	return nil
}

var _ CartServiceInterface = (*CartService)(nil)
