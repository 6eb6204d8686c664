package database

import (
	"testing"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedCreatesRestaurantAndCategories(t *testing.T) {
	db := setupSeedTestDB(t)

	restaurant, err := Seed(db)
	require.NoError(t, err)
	require.NotNil(t, restaurant)
	assert.NotEmpty(t, restaurant.ID)

	var restaurantCount, categoryCount int64
	db.Model(&models.Restaurant{}).Count(&restaurantCount)
	db.Model(&models.Category{}).Count(&categoryCount)

	assert.Equal(t, int64(1), restaurantCount)
	assert.Equal(t, int64(len(defaultCategories)), categoryCount)

	var categories []models.Category
	require.NoError(t, db.Where("restaurant_id = ?", restaurant.ID).Find(&categories).Error)
	assert.Len(t, categories, len(defaultCategories))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	first, err := Seed(db)
	require.NoError(t, err)

	second, err := Seed(db)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var restaurantCount, categoryCount int64
	db.Model(&models.Restaurant{}).Count(&restaurantCount)
	db.Model(&models.Category{}).Count(&categoryCount)

	assert.Equal(t, int64(1), restaurantCount, "second seed must not duplicate the restaurant")
	assert.Equal(t, int64(len(defaultCategories)), categoryCount, "second seed must not duplicate categories")
}
