package services

import (
	"context"
	"errors"

	"github.com/ashurar25/FoodOrder-sub000/internal/cache"
	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category_not_found")
	ErrCategoryInUse    = errors.New("category_in_use")
)

// MenuService provides category and food item operations, restaurant-scoped
type MenuService interface {
	// GetCategories lists categories in creation order
	GetCategories(restaurantID string) ([]models.Category, error)
	// CreateCategory creates a new category for the restaurant
	CreateCategory(category models.Category) (models.Category, error)
	// UpdateCategory updates name/icon of an existing category
	UpdateCategory(id string, data models.Category) (models.Category, error)
	// DeleteCategory removes a category; blocked while food items reference it
	DeleteCategory(id string) error
	// GetFoodItems lists food items in creation order, optionally filtered by category
	GetFoodItems(restaurantID, categoryID string) ([]models.FoodItem, error)
	// GetFoodItemByID retrieves one food item
	GetFoodItemByID(id string) (models.FoodItem, error)
	// CreateFoodItem creates a new food item
	CreateFoodItem(item models.FoodItem) (models.FoodItem, error)
	// UpdateFoodItem updates an existing food item
	UpdateFoodItem(id string, item models.FoodItem) (models.FoodItem, error)
	// DeleteFoodItem deletes a food item by id
	DeleteFoodItem(id string) error
}

type menuService struct {
	db    *gorm.DB
	cache *cache.MenuCache
}

// NewMenuService creates a new instance of MenuService. menuCache may be
// nil, which disables listing caching.
func NewMenuService(db *gorm.DB, menuCache *cache.MenuCache) MenuService {
	return &menuService{db: db, cache: menuCache}
}

func (s *menuService) GetCategories(restaurantID string) ([]models.Category, error) {
	ctx := context.Background()

	var categories []models.Category
	if s.cache.Get(ctx, restaurantID, "categories", &categories) {
		return categories, nil
	}

	err := s.db.Where("restaurant_id = ?", restaurantID).
		Order("created_at asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, restaurantID, "categories", categories)
	return categories, nil
}

func (s *menuService) CreateCategory(category models.Category) (models.Category, error) {
	if err := s.db.Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	s.cache.Invalidate(context.Background(), category.RestaurantID)
	return category, nil
}

func (s *menuService) UpdateCategory(id string, data models.Category) (models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, ErrCategoryNotFound
		}
		return models.Category{}, err
	}

	category.Name = data.Name
	category.Icon = data.Icon
	if err := s.db.Save(&category).Error; err != nil {
		return models.Category{}, err
	}
	s.cache.Invalidate(context.Background(), category.RestaurantID)
	return category, nil
}

func (s *menuService) DeleteCategory(id string) error {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	// Historical order items reference food items; cascading would orphan
	// menu history, so deletion is blocked while items remain.
	var itemCount int64
	if err := s.db.Model(&models.FoodItem{}).
		Where("category_id = ?", id).
		Count(&itemCount).Error; err != nil {
		return err
	}
	if itemCount > 0 {
		return ErrCategoryInUse
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return err
	}
	s.cache.Invalidate(context.Background(), category.RestaurantID)
	return nil
}

func (s *menuService) GetFoodItems(restaurantID, categoryID string) ([]models.FoodItem, error) {
	ctx := context.Background()
	cacheKey := "items"
	if categoryID != "" {
		cacheKey = "items:" + categoryID
	}

	var items []models.FoodItem
	if s.cache.Get(ctx, restaurantID, cacheKey, &items) {
		return items, nil
	}

	query := s.db.Where("restaurant_id = ?", restaurantID)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if err := query.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	s.cache.Set(ctx, restaurantID, cacheKey, items)
	return items, nil
}

func (s *menuService) GetFoodItemByID(id string) (models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FoodItem{}, ErrFoodItemNotFound
		}
		return models.FoodItem{}, err
	}
	return item, nil
}

func (s *menuService) CreateFoodItem(item models.FoodItem) (models.FoodItem, error) {
	var category models.Category
	err := s.db.Where("id = ? AND restaurant_id = ?", item.CategoryID, item.RestaurantID).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FoodItem{}, ErrCategoryNotFound
	}
	if err != nil {
		return models.FoodItem{}, err
	}

	if err := s.db.Create(&item).Error; err != nil {
		return models.FoodItem{}, err
	}
	s.cache.Invalidate(context.Background(), item.RestaurantID)
	return item, nil
}

func (s *menuService) UpdateFoodItem(id string, data models.FoodItem) (models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FoodItem{}, ErrFoodItemNotFound
		}
		return models.FoodItem{}, err
	}

	item.Name = data.Name
	item.Description = data.Description
	item.Price = data.Price
	item.ImageURL = data.ImageURL
	item.Rating = data.Rating
	item.Available = data.Available
	if data.CategoryID != "" {
		item.CategoryID = data.CategoryID
	}

	if err := s.db.Save(&item).Error; err != nil {
		return models.FoodItem{}, err
	}
	s.cache.Invalidate(context.Background(), item.RestaurantID)
	return item, nil
}

func (s *menuService) DeleteFoodItem(id string) error {
	var item models.FoodItem
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFoodItemNotFound
		}
		return err
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return err
	}
	s.cache.Invalidate(context.Background(), item.RestaurantID)
	return nil
}
