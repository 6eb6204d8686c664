package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups food items on the menu. Listing order is creation order.
type Category struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RestaurantID string `gorm:"index;not null" json:"restaurantId"`
	Name         string `gorm:"not null" json:"name"`
	Icon         string `json:"icon"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	FoodItems []FoodItem `gorm:"foreignKey:CategoryID" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
