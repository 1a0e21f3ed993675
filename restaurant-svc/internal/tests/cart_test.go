package tests

import (
	"context"
	"testing"

	"savory-delights/restaurant-svc/internal/domain"
	"savory-delights/restaurant-svc/internal/mocks"
	"savory-delights/restaurant-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesIdenticalLines(t *testing.T) {
	var cart domain.Cart
	options := map[string]string{"size": "large", "sauce": "pepper"}

	cart.Add(domain.CartLine{MenuItemID: "steak", Quantity: 2, SelectedOptions: options, SelectedAddOns: map[string]int{"egg": 1}, UnitPrice: dec("135")})
	merged := cart.Add(domain.CartLine{
		MenuItemID:      "steak",
		Quantity:        3,
		SelectedOptions: map[string]string{"sauce": "pepper", "size": "large"},
		SelectedAddOns:  map[string]int{"egg": 1, "fries": 0},
		UnitPrice:       dec("135"),
	})

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, merged.Quantity)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.True(t, dec("675").Equal(cart.Lines[0].LineTotal))
}

func TestCart_CheckAdd(t *testing.T) {
	var cart domain.Cart
	cart.Add(domain.CartLine{MenuItemID: "salad", Quantity: 90, UnitPrice: dec("9.50")})

	assert.NoError(t, cart.CheckAdd(domain.CartLine{MenuItemID: "salad", Quantity: 9}))
	assert.ErrorIs(t, cart.CheckAdd(domain.CartLine{MenuItemID: "salad", Quantity: 10}), domain.ErrInvalidQuantity)
	assert.NoError(t, cart.CheckAdd(domain.CartLine{MenuItemID: "salad", Quantity: 10, SelectedAddOns: map[string]int{"egg": 1}}))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, domain.SortedKeys(map[string]int{"c": 3, "a": 1, "b": 2}))
	assert.Empty(t, domain.SortedKeys(map[string]string(nil)))
}

func TestCart_AddKeepsDistinctConfigurations(t *testing.T) {
	tests := []struct {
		name  string
		first domain.CartLine
		other domain.CartLine
	}{
		{
			name:  "different option",
			first: domain.CartLine{MenuItemID: "steak", Quantity: 1, SelectedOptions: map[string]string{"size": "large"}},
			other: domain.CartLine{MenuItemID: "steak", Quantity: 1, SelectedOptions: map[string]string{"size": "regular"}},
		},
		{
			name:  "different add-on quantity",
			first: domain.CartLine{MenuItemID: "steak", Quantity: 1, SelectedAddOns: map[string]int{"egg": 1}},
			other: domain.CartLine{MenuItemID: "steak", Quantity: 1, SelectedAddOns: map[string]int{"egg": 2}},
		},
		{
			name:  "extra option",
			first: domain.CartLine{MenuItemID: "steak", Quantity: 1},
			other: domain.CartLine{MenuItemID: "steak", Quantity: 1, SelectedOptions: map[string]string{"sauce": "pepper"}},
		},
		{
			name:  "different item",
			first: domain.CartLine{MenuItemID: "steak", Quantity: 1},
			other: domain.CartLine{MenuItemID: "salad", Quantity: 1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var cart domain.Cart
			a := cart.Add(testCase.first)
			b := cart.Add(testCase.other)

			assert.Len(t, cart.Lines, 2)
			assert.NotEqual(t, a.ID, b.ID)
		})
	}
}

func TestCart_SetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		lineID    func(domain.CartLine) string
		wantLines int
		wantErr   error
	}{
		{name: "update", quantity: 4, lineID: func(l domain.CartLine) string { return l.ID }, wantLines: 1},
		{name: "zero removes", quantity: 0, lineID: func(l domain.CartLine) string { return l.ID }, wantLines: 0},
		{name: "negative", quantity: -1, lineID: func(l domain.CartLine) string { return l.ID }, wantLines: 1, wantErr: domain.ErrInvalidQuantity},
		{name: "above line cap", quantity: domain.MaxLineQuantity + 1, lineID: func(l domain.CartLine) string { return l.ID }, wantLines: 1, wantErr: domain.ErrInvalidQuantity},
		{name: "unknown line", quantity: 2, lineID: func(domain.CartLine) string { return "missing" }, wantLines: 1, wantErr: domain.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var cart domain.Cart
			line := cart.Add(domain.CartLine{MenuItemID: "salad", Quantity: 1, UnitPrice: dec("9.50")})

			err := cart.SetQuantity(testCase.lineID(line), testCase.quantity)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, cart.Lines, testCase.wantLines)
			if testCase.wantErr == nil && testCase.wantLines == 1 {
				assert.True(t, dec("38").Equal(cart.Lines[0].LineTotal))
			}
		})
	}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCartStore(t)
	menu := mocks.NewCatalogRepository(t)
	svc := service.NewCartService(store, menu, dec("0.07"))

	store.On("Load", ctx, "cart-1").Return(&domain.Cart{}, nil).Twice()
	menu.On("GetMenuItem", ctx, "steak").Return(steakItem(), nil).Twice()
	store.On("Save", ctx, "cart-1", mock.AnythingOfType("*domain.Cart")).Return(nil).Twice()

	req := domain.AddToCartRequest{
		MenuItemID:      "steak",
		Quantity:        3,
		SelectedOptions: map[string]string{"size": "large"},
		SelectedAddOns:  map[string]int{"egg": 2},
	}
	view, err := svc.AddItem(ctx, "cart-1", req)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Ribeye Steak", view.Lines[0].Name)
	assert.True(t, dec("150").Equal(view.Lines[0].UnitPrice))
	assert.True(t, dec("450").Equal(view.Subtotal))
	assert.True(t, dec("481.50").Equal(view.Total))

	// required options are not enforced while building the cart
	_, err = svc.AddItem(ctx, "cart-1", domain.AddToCartRequest{MenuItemID: "steak", Quantity: 1})
	assert.NoError(t, err)
}

func TestCartService_AddItemRejections(t *testing.T) {
	ctx := context.Background()
	unavailable := saladItem()
	unavailable.Available = false

	tests := []struct {
		name      string
		cartID    string
		req       domain.AddToCartRequest
		setupMock func(*mocks.CartStore, *mocks.CatalogRepository)
		wantErr   error
	}{
		{
			name:      "missing cart id",
			cartID:    " ",
			req:       domain.AddToCartRequest{MenuItemID: "steak", Quantity: 1},
			setupMock: func(*mocks.CartStore, *mocks.CatalogRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:      "zero quantity",
			cartID:    "cart-1",
			req:       domain.AddToCartRequest{MenuItemID: "steak", Quantity: 0},
			setupMock: func(*mocks.CartStore, *mocks.CatalogRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:      "quantity above line cap",
			cartID:    "cart-1",
			req:       domain.AddToCartRequest{MenuItemID: "steak", Quantity: domain.MaxLineQuantity + 1},
			setupMock: func(*mocks.CartStore, *mocks.CatalogRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:   "merge past line cap",
			cartID: "cart-1",
			req:    domain.AddToCartRequest{MenuItemID: "steak", Quantity: 2},
			setupMock: func(s *mocks.CartStore, m *mocks.CatalogRepository) {
				var cart domain.Cart
				cart.Add(domain.CartLine{MenuItemID: "steak", Quantity: domain.MaxLineQuantity - 1, UnitPrice: dec("130")})
				s.On("Load", ctx, "cart-1").Return(&cart, nil).Once()
				m.On("GetMenuItem", ctx, "steak").Return(steakItem(), nil).Once()
			},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:   "unknown option",
			cartID: "cart-1",
			req:    domain.AddToCartRequest{MenuItemID: "steak", Quantity: 1, SelectedOptions: map[string]string{"size": "xl"}},
			setupMock: func(s *mocks.CartStore, m *mocks.CatalogRepository) {
				s.On("Load", ctx, "cart-1").Return(&domain.Cart{}, nil).Once()
				m.On("GetMenuItem", ctx, "steak").Return(steakItem(), nil).Once()
			},
			wantErr: domain.ErrUnknownOption,
		},
		{
			name:   "unavailable item",
			cartID: "cart-1",
			req:    domain.AddToCartRequest{MenuItemID: "salad", Quantity: 1},
			setupMock: func(s *mocks.CartStore, m *mocks.CatalogRepository) {
				s.On("Load", ctx, "cart-1").Return(&domain.Cart{}, nil).Once()
				m.On("GetMenuItem", ctx, "salad").Return(unavailable, nil).Once()
			},
			wantErr: domain.ErrItemUnavailable,
		},
		{
			name:   "unknown item",
			cartID: "cart-1",
			req:    domain.AddToCartRequest{MenuItemID: "ghost", Quantity: 1},
			setupMock: func(s *mocks.CartStore, m *mocks.CatalogRepository) {
				s.On("Load", ctx, "cart-1").Return(&domain.Cart{}, nil).Once()
				m.On("GetMenuItem", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewCartStore(t)
			menu := mocks.NewCatalogRepository(t)
			testCase.setupMock(store, menu)
			svc := service.NewCartService(store, menu, dec("0.08"))

			view, err := svc.AddItem(ctx, testCase.cartID, testCase.req)

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, view)
			store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	var cart domain.Cart
	line := cart.Add(domain.CartLine{MenuItemID: "salad", Name: "Garden Salad", Quantity: 1, UnitPrice: dec("9.50")})

	store := mocks.NewCartStore(t)
	store.On("Load", ctx, "cart-1").Return(&cart, nil)
	store.On("Save", ctx, "cart-1", mock.AnythingOfType("*domain.Cart")).Return(nil)
	svc := service.NewCartService(store, mocks.NewCatalogRepository(t), dec("0"))

	view, err := svc.UpdateQuantity(ctx, "cart-1", line.ID, 3)
	require.NoError(t, err)
	assert.True(t, dec("28.50").Equal(view.Total))

	view, err = svc.RemoveLine(ctx, "cart-1", line.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
}
