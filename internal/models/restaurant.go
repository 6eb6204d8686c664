package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is the single tenant owning all menu and order data.
// Seeded once at first boot, updated by admins, never deleted.
type Restaurant struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	LogoURL      string `json:"logoUrl"`
	ReceiptImage string `json:"receiptImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
