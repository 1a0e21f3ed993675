package storage

import (
	"context"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/lib/pq"
)

const menuItemColumns = `id, name, description, price, category, image_url, available, created_at, updated_at`

func (r *PostgresRepository) ListMenuItems(ctx context.Context, category string) ([]domain.MenuItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	items := []domain.MenuItem{}
	var err error
	if category == "" {
		err = r.DB.SelectContext(ctx, &items, `SELECT `+menuItemColumns+` FROM menu_items ORDER BY category, name`)
	} else {
		err = r.DB.SelectContext(ctx, &items, `SELECT `+menuItemColumns+` FROM menu_items WHERE category = $1 ORDER BY name`, category)
	}
	if err != nil {
		return nil, classify(err)
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	categories, addOns, err := r.loadConfiguration(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].OptionCategories = categories[items[i].ID]
		items[i].AddOns = addOns[items[i].ID]
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var item domain.MenuItem
	if err := r.DB.GetContext(ctx, &item, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id); err != nil {
		return nil, classify(err)
	}

	categories, addOns, err := r.loadConfiguration(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	item.OptionCategories = categories[id]
	item.AddOns = addOns[id]
	return &item, nil
}

// loadConfiguration fetches option categories with their choices and the
// add-ons for the given menu items, grouped by menu item id.
func (r *PostgresRepository) loadConfiguration(ctx context.Context, itemIDs []string) (map[string][]domain.OptionCategory, map[string][]domain.AddOn, error) {
	var categories []domain.OptionCategory
	if err := r.DB.SelectContext(ctx, &categories, `
		SELECT id, menu_item_id, title, required, created_at
		FROM menu_option_categories
		WHERE menu_item_id = ANY($1)
		ORDER BY created_at, id`, pq.Array(itemIDs)); err != nil {
		return nil, nil, classify(err)
	}

	choicesByCategory := map[string][]domain.OptionChoice{}
	if len(categories) > 0 {
		categoryIDs := make([]string, len(categories))
		for i := range categories {
			categoryIDs[i] = categories[i].ID
		}
		var choices []domain.OptionChoice
		if err := r.DB.SelectContext(ctx, &choices, `
			SELECT id, category_id, label, price
			FROM menu_option_choices
			WHERE category_id = ANY($1)
			ORDER BY price, label`, pq.Array(categoryIDs)); err != nil {
			return nil, nil, classify(err)
		}
		for _, choice := range choices {
			choicesByCategory[choice.CategoryID] = append(choicesByCategory[choice.CategoryID], choice)
		}
	}

	categoriesByItem := map[string][]domain.OptionCategory{}
	for _, category := range categories {
		category.Choices = choicesByCategory[category.ID]
		categoriesByItem[category.MenuItemID] = append(categoriesByItem[category.MenuItemID], category)
	}

	var addOns []domain.AddOn
	if err := r.DB.SelectContext(ctx, &addOns, `
		SELECT id, menu_item_id, label, price, created_at
		FROM menu_add_ons
		WHERE menu_item_id = ANY($1)
		ORDER BY label`, pq.Array(itemIDs)); err != nil {
		return nil, nil, classify(err)
	}
	addOnsByItem := map[string][]domain.AddOn{}
	for _, addOn := range addOns {
		addOnsByItem[addOn.MenuItemID] = append(addOnsByItem[addOn.MenuItemID], addOn)
	}

	return categoriesByItem, addOnsByItem, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowxContext(ctx, `
		INSERT INTO menu_items (name, description, price, category, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	return classify(err)
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowxContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, image_url = $5, available = $6, updated_at = now()
		WHERE id = $7
		RETURNING created_at, updated_at`,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available, item.ID,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	return classify(err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
}

// CreateOptionCategory inserts the category and its choices in one transaction.
func (r *PostgresRepository) CreateOptionCategory(ctx context.Context, category *domain.OptionCategory) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO menu_option_categories (menu_item_id, title, required)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		category.MenuItemID, category.Title, category.Required,
	).Scan(&category.ID, &category.CreatedAt); err != nil {
		return classify(err)
	}

	for i := range category.Choices {
		choice := &category.Choices[i]
		choice.CategoryID = category.ID
		if err := tx.QueryRowxContext(ctx, `
			INSERT INTO menu_option_choices (category_id, label, price)
			VALUES ($1, $2, $3)
			RETURNING id`,
			choice.CategoryID, choice.Label, choice.PriceDelta,
		).Scan(&choice.ID); err != nil {
			return classify(err)
		}
	}

	return classify(tx.Commit())
}

func (r *PostgresRepository) DeleteOptionCategory(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, `DELETE FROM menu_option_categories WHERE id = $1`, id)
}

func (r *PostgresRepository) CreateAddOn(ctx context.Context, addOn *domain.AddOn) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowxContext(ctx, `
		INSERT INTO menu_add_ons (menu_item_id, label, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		addOn.MenuItemID, addOn.Label, addOn.Price,
	).Scan(&addOn.ID, &addOn.CreatedAt)
	return classify(err)
}

func (r *PostgresRepository) DeleteAddOn(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, `DELETE FROM menu_add_ons WHERE id = $1`, id)
}

func (r *PostgresRepository) deleteByID(ctx context.Context, query, id string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, classify(err)
	}
	rows, err := result.RowsAffected()
	return rows, classify(err)
}
