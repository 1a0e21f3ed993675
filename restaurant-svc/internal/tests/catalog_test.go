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

func TestCatalogService_CreateMenuItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		item    *domain.MenuItem
		wantErr error
	}{
		{name: "valid", item: &domain.MenuItem{Name: "Soup", Category: "starters", Price: dec("6.00"), Available: true}},
		{name: "missing name", item: &domain.MenuItem{Category: "starters", Price: dec("6.00")}, wantErr: domain.ErrValidation},
		{name: "missing category", item: &domain.MenuItem{Name: "Soup", Price: dec("6.00")}, wantErr: domain.ErrValidation},
		{name: "negative price", item: &domain.MenuItem{Name: "Soup", Category: "starters", Price: dec("-1")}, wantErr: domain.ErrValidation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			if testCase.wantErr == nil {
				repo.On("CreateMenuItem", ctx, testCase.item).Return(nil).Once()
			}

			err := service.NewCatalogService(repo).CreateMenuItem(ctx, testCase.item)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				repo.AssertNotCalled(t, "CreateMenuItem", mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_AddOptionCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category with choices", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		category := &domain.OptionCategory{
			MenuItemID: "steak",
			Title:      "Doneness",
			Required:   true,
			Choices:    []domain.OptionChoice{{Label: "Rare"}, {Label: "Medium", PriceDelta: dec("0")}},
		}
		repo.On("GetMenuItem", ctx, "steak").Return(steakItem(), nil).Once()
		repo.On("CreateOptionCategory", ctx, category).Return(nil).Once()

		require.NoError(t, service.NewCatalogService(repo).AddOptionCategory(ctx, category))
		assert.Len(t, category.Choices, 2)
	})

	t.Run("rejects", func(t *testing.T) {
		tests := []struct {
			name     string
			category *domain.OptionCategory
		}{
			{name: "no menu item", category: &domain.OptionCategory{Title: "Size", Choices: []domain.OptionChoice{{Label: "S"}}}},
			{name: "no choices", category: &domain.OptionCategory{MenuItemID: "steak", Title: "Size"}},
			{name: "unlabelled choice", category: &domain.OptionCategory{MenuItemID: "steak", Title: "Size", Choices: []domain.OptionChoice{{}}}},
			{name: "negative delta", category: &domain.OptionCategory{MenuItemID: "steak", Title: "Size", Choices: []domain.OptionChoice{{Label: "S", PriceDelta: dec("-2")}}}},
		}

		for _, testCase := range tests {
			t.Run(testCase.name, func(t *testing.T) {
				repo := mocks.NewCatalogRepository(t)
				err := service.NewCatalogService(repo).AddOptionCategory(ctx, testCase.category)
				assert.ErrorIs(t, err, domain.ErrValidation)
			})
		}
	})

	t.Run("unknown menu item", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("GetMenuItem", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

		err := service.NewCatalogService(repo).AddOptionCategory(ctx, &domain.OptionCategory{
			MenuItemID: "ghost", Title: "Size", Choices: []domain.OptionChoice{{Label: "S"}},
		})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "CreateOptionCategory", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		rows    int64
		repoErr error
		wantErr error
	}{
		{name: "deleted", rows: 1},
		{name: "nothing matched", rows: 0, wantErr: domain.ErrNotFound},
		{name: "store down", repoErr: domain.ErrStoreUnavailable, wantErr: domain.ErrStoreUnavailable},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			repo.On("DeleteAddOn", ctx, "fries").Return(testCase.rows, testCase.repoErr).Once()

			err := service.NewCatalogService(repo).DeleteAddOn(ctx, "fries")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeSlotService_CreateTemplate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		template *domain.TimeSlotTemplate
		wantErr  error
	}{
		{name: "valid", template: &domain.TimeSlotTemplate{DayOfWeek: 5, StartTime: domain.NewClock(18, 0), EndTime: domain.NewClock(22, 0), MaxCapacity: 30, IsAvailable: true}},
		{name: "weekday out of range", template: &domain.TimeSlotTemplate{DayOfWeek: 7, StartTime: domain.NewClock(18, 0), EndTime: domain.NewClock(22, 0)}, wantErr: domain.ErrValidation},
		{name: "end before start", template: &domain.TimeSlotTemplate{DayOfWeek: 1, StartTime: domain.NewClock(22, 0), EndTime: domain.NewClock(18, 0)}, wantErr: domain.ErrInvalidTime},
		{name: "empty window", template: &domain.TimeSlotTemplate{DayOfWeek: 1, StartTime: domain.NewClock(18, 0), EndTime: domain.NewClock(18, 0)}, wantErr: domain.ErrInvalidTime},
		{name: "negative capacity", template: &domain.TimeSlotTemplate{DayOfWeek: 1, StartTime: domain.NewClock(18, 0), EndTime: domain.NewClock(20, 0), MaxCapacity: -1}, wantErr: domain.ErrValidation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewTimeSlotRepository(t)
			if testCase.wantErr == nil {
				repo.On("CreateTemplate", ctx, testCase.template).Return(nil).Once()
			}

			err := service.NewTimeSlotService(repo).CreateTemplate(ctx, testCase.template)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeSlotService_ListExceptions(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewTimeSlotRepository(t)
	svc := service.NewTimeSlotService(repo)

	repo.On("ListExceptions", ctx).Return([]domain.TimeSlotException{{ID: "a"}, {ID: "b"}}, nil).Once()
	repo.On("ExceptionsForDate", ctx, monday).Return([]domain.TimeSlotException{{ID: "a"}}, nil).Once()

	all, err := svc.ListExceptions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	date := monday
	onDate, err := svc.ListExceptions(ctx, &date)
	require.NoError(t, err)
	assert.Len(t, onDate, 1)
}

func TestTimeSlotService_CreateExceptionNeedsDate(t *testing.T) {
	repo := mocks.NewTimeSlotRepository(t)

	err := service.NewTimeSlotService(repo).CreateException(context.Background(), &domain.TimeSlotException{
		StartTime: domain.NewClock(18, 0), EndTime: domain.NewClock(20, 0),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
