package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FoodItem is a purchasable menu entry. Price and rating are fixed-point
// decimals, never floats; money columns are decimal(10,2).
type FoodItem struct {
	ID           string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RestaurantID string          `gorm:"index;not null" json:"restaurantId"`
	CategoryID   string          `gorm:"index;not null" json:"categoryId"`
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Rating       decimal.Decimal `gorm:"type:decimal(2,1);default:0" json:"rating"`
	Available    bool            `gorm:"default:true" json:"available"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
