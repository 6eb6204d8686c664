package services

import (
	"errors"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"gorm.io/gorm"
)

var ErrBannerNotFound = errors.New("banner_not_found")

type BannerService interface {
	GetBanners(restaurantID string, activeOnly bool) ([]models.Banner, error)
	CreateBanner(banner models.Banner) (models.Banner, error)
	UpdateBanner(id string, banner models.Banner) (models.Banner, error)
	DeleteBanner(id string) error
}

type bannerService struct {
	db *gorm.DB
}

func NewBannerService(db *gorm.DB) BannerService {
	return &bannerService{db: db}
}

func (s *bannerService) GetBanners(restaurantID string, activeOnly bool) ([]models.Banner, error) {
	query := s.db.Where("restaurant_id = ?", restaurantID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var banners []models.Banner
	if err := query.Order("created_at asc").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (s *bannerService) CreateBanner(banner models.Banner) (models.Banner, error) {
	if err := s.db.Create(&banner).Error; err != nil {
		return models.Banner{}, err
	}
	return banner, nil
}

func (s *bannerService) UpdateBanner(id string, data models.Banner) (models.Banner, error) {
	var banner models.Banner
	if err := s.db.Where("id = ?", id).First(&banner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Banner{}, ErrBannerNotFound
		}
		return models.Banner{}, err
	}

	banner.Title = data.Title
	banner.Subtitle = data.Subtitle
	banner.ImageURL = data.ImageURL
	banner.LinkURL = data.LinkURL
	banner.Active = data.Active

	if err := s.db.Save(&banner).Error; err != nil {
		return models.Banner{}, err
	}
	return banner, nil
}

func (s *bannerService) DeleteBanner(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Banner{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBannerNotFound
	}
	return nil
}
