package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner is a promotional unit rotated on the customer home screen.
type Banner struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RestaurantID string `gorm:"index;not null" json:"restaurantId"`
	Title        string `gorm:"not null" json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	ImageURL     string `gorm:"not null" json:"imageUrl"`
	LinkURL      string `json:"linkUrl,omitempty"`
	Active       bool   `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
