package service

import (
	"context"
	"fmt"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListMenu(ctx context.Context, category string) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, category)
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return err
	}
	log.Info().Str("menu_item_id", item.ID).Str("name", item.Name).Msg("menu item created")
	return nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: menu item id is required", domain.ErrValidation)
	}
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.repo.UpdateMenuItem(ctx, item)
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	return deleted(s.repo.DeleteMenuItem(ctx, id))("menu item", id)
}

// AddOptionCategory creates a category together with its choices.
func (s *CatalogService) AddOptionCategory(ctx context.Context, category *domain.OptionCategory) error {
	if category.MenuItemID == "" {
		return fmt.Errorf("%w: menu_item_id is required", domain.ErrValidation)
	}
	if err := validateStruct(category); err != nil {
		return err
	}
	for _, choice := range category.Choices {
		if choice.PriceDelta.IsNegative() {
			return fmt.Errorf("%w: choice %q has a negative price", domain.ErrValidation, choice.Label)
		}
	}
	if _, err := s.repo.GetMenuItem(ctx, category.MenuItemID); err != nil {
		return err
	}
	return s.repo.CreateOptionCategory(ctx, category)
}

func (s *CatalogService) DeleteOptionCategory(ctx context.Context, id string) error {
	return deleted(s.repo.DeleteOptionCategory(ctx, id))("option category", id)
}

func (s *CatalogService) AddAddOn(ctx context.Context, addOn *domain.AddOn) error {
	if addOn.MenuItemID == "" {
		return fmt.Errorf("%w: menu_item_id is required", domain.ErrValidation)
	}
	if err := validateStruct(addOn); err != nil {
		return err
	}
	if addOn.Price.IsNegative() {
		return fmt.Errorf("%w: add-on %q has a negative price", domain.ErrValidation, addOn.Label)
	}
	if _, err := s.repo.GetMenuItem(ctx, addOn.MenuItemID); err != nil {
		return err
	}
	return s.repo.CreateAddOn(ctx, addOn)
}

func (s *CatalogService) DeleteAddOn(ctx context.Context, id string) error {
	return deleted(s.repo.DeleteAddOn(ctx, id))("add-on", id)
}

func validateMenuItem(item *domain.MenuItem) error {
	if err := validateStruct(item); err != nil {
		return err
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}

// deleted turns a (rowsAffected, err) pair into ErrNotFound when nothing matched.
func deleted(rows int64, err error) func(kind, id string) error {
	return func(kind, id string) error {
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
		}
		log.Info().Str("id", id).Msgf("%s deleted", kind)
		return nil
	}
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
