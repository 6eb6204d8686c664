package services

import (
	"errors"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant_not_found")

type RestaurantService interface {
	GetRestaurant(id string) (*models.Restaurant, error)
	UpdateRestaurant(id string, data models.Restaurant) (*models.Restaurant, error)
}

type restaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.Where("id = ?", id).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (s *restaurantService) UpdateRestaurant(id string, data models.Restaurant) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.Where("id = ?", id).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	restaurant.Name = data.Name
	restaurant.Description = data.Description
	restaurant.LogoURL = data.LogoURL
	restaurant.ReceiptImage = data.ReceiptImage

	if err := s.db.Save(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}
