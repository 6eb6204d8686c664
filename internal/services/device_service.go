package services

import (
	"errors"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"gorm.io/gorm"
)

var ErrDeviceNotFound = errors.New("device_client_not_found")

// DeviceService manages kiosk/till API clients registered by admins
type DeviceService interface {
	CreateClient(client *models.DeviceClient) error
	ListClients() ([]models.DeviceClient, error)
	GetClientByID(id string) (*models.DeviceClient, error)
	DeleteClient(id string) error
}

type deviceService struct {
	db *gorm.DB
}

func NewDeviceService(db *gorm.DB) DeviceService {
	return &deviceService{db: db}
}

func (s *deviceService) CreateClient(client *models.DeviceClient) error {
	return s.db.Create(client).Error
}

func (s *deviceService) ListClients() ([]models.DeviceClient, error) {
	var clients []models.DeviceClient
	if err := s.db.Order("created_at asc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *deviceService) GetClientByID(id string) (*models.DeviceClient, error) {
	var client models.DeviceClient
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (s *deviceService) DeleteClient(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.DeviceClient{})
	if result.RowsAffected == 0 {
		return ErrDeviceNotFound
	}
	return result.Error
}
