package database

import (
	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"gorm.io/gorm"
)

// defaultCategories is the fixed menu skeleton created on first boot.
var defaultCategories = []models.Category{
	{Name: "Rice Dishes", Icon: "🍚"},
	{Name: "Noodles", Icon: "🍜"},
	{Name: "Fried/Grilled", Icon: "🍗"},
	{Name: "Salads", Icon: "🥗"},
	{Name: "Drinks", Icon: "🥤"},
	{Name: "Desserts", Icon: "🍧"},
}

// Seed creates the restaurant row and the default category set on first
// boot. It is idempotent: when any restaurant already exists it does
// nothing and returns the existing row.
func Seed(db *gorm.DB) (*models.Restaurant, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count > 0 {
		log.Info("Database already seeded with initial data")
		var restaurant models.Restaurant
		if err := db.Order("created_at asc").First(&restaurant).Error; err != nil {
			return nil, err
		}
		return &restaurant, nil
	}

	log.Info("Database is empty, seeding initial data")
	restaurant := models.Restaurant{
		Name:        "FoodOrder",
		Description: "Scan, order and enjoy",
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		for i := range defaultCategories {
			category := defaultCategories[i]
			category.RestaurantID = restaurant.ID
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithField("restaurant_id", restaurant.ID).Info("Database seeded successfully")
	return &restaurant, nil
}
