package services

import (
	"testing"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	restaurant := models.Restaurant{Name: "Test Kitchen"}
	require.NoError(t, db.Create(&restaurant).Error)

	service := NewMenuService(db, nil)

	created, err := service.CreateCategory(models.Category{
		RestaurantID: restaurant.ID,
		Name:         "Drinks",
		Icon:         "🥤",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := service.UpdateCategory(created.ID, models.Category{Name: "Beverages", Icon: "🧋"})
	require.NoError(t, err)
	assert.Equal(t, "Beverages", updated.Name)
	assert.Equal(t, "🧋", updated.Icon)

	categories, err := service.GetCategories(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Beverages", categories[0].Name)

	require.NoError(t, service.DeleteCategory(created.ID))

	categories, err = service.GetCategories(restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestDeleteCategoryBlockedWhileItemsRemain(t *testing.T) {
	db := setupTestDB(t)
	restaurantID, item := seedMenu(t, db)
	service := NewMenuService(db, nil)

	err := service.DeleteCategory(item.CategoryID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	// After removing the item the category can go
	require.NoError(t, service.DeleteFoodItem(item.ID))
	require.NoError(t, service.DeleteCategory(item.CategoryID))

	categories, err := service.GetCategories(restaurantID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestFoodItemLifecycle(t *testing.T) {
	db := setupTestDB(t)
	restaurantID, existing := seedMenu(t, db)
	service := NewMenuService(db, nil)

	created, err := service.CreateFoodItem(models.FoodItem{
		RestaurantID: restaurantID,
		CategoryID:   existing.CategoryID,
		Name:         "Green Curry",
		Description:  "With jasmine rice",
		Price:        decimal.RequireFromString("12.50"),
		Available:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	fetched, err := service.GetFoodItemByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Curry", fetched.Name)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("12.50")))

	fetched.Price = decimal.RequireFromString("13.00")
	fetched.Available = false
	updated, err := service.UpdateFoodItem(created.ID, fetched)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("13.00")))
	assert.False(t, updated.Available)

	items, err := service.GetFoodItems(restaurantID, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	byCategory, err := service.GetFoodItems(restaurantID, existing.CategoryID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	require.NoError(t, service.DeleteFoodItem(created.ID))
	items, err = service.GetFoodItems(restaurantID, "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFoodItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db)
	service := NewMenuService(db, nil)

	_, err := service.GetFoodItemByID("missing")
	assert.ErrorIs(t, err, ErrFoodItemNotFound)

	_, err = service.UpdateFoodItem("missing", models.FoodItem{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrFoodItemNotFound)

	err = service.DeleteFoodItem("missing")
	assert.ErrorIs(t, err, ErrFoodItemNotFound)
}

func TestCreateFoodItemRequiresOwnCategory(t *testing.T) {
	db := setupTestDB(t)
	restaurantID, _ := seedMenu(t, db)
	_, foreign := seedMenu(t, db)

	service := NewMenuService(db, nil)

	// Category belongs to a different restaurant
	_, err := service.CreateFoodItem(models.FoodItem{
		RestaurantID: restaurantID,
		CategoryID:   foreign.CategoryID,
		Name:         "Stray Dish",
		Price:        decimal.RequireFromString("9.00"),
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db, nil)

	_, err := service.UpdateCategory("missing", models.Category{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	err = service.DeleteCategory("missing")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
