package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type DeviceClient struct {
	ID          string `gorm:"primaryKey"`
	Secret      string `gorm:"not null"`
	Label       string `gorm:"not null"`
	TableNumber string
	Scopes      string
	UserID      string `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DeviceClient) TableName() string {
	return "device_clients"
}

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "foodorder.sqlite", "Path to the sqlite database")
	table := flag.String("table", "", "Fixed table number for a bolted-down kiosk (empty for roaming tills)")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	clientID := "kiosk-dev"
	clientSecret := "kiosk-secret-123"
	if *table != "" {
		clientID = fmt.Sprintf("kiosk-table-%s", *table)
	}

	// Check if client already exists
	var existing DeviceClient
	if err := db.Where("id = ?", clientID).First(&existing).Error; err == nil {
		fmt.Println("Development kiosk client already exists!")
		fmt.Printf("Client ID: %s\n", clientID)
		fmt.Printf("Client Secret: %s\n", clientSecret)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash secret:", err)
	}

	client := DeviceClient{
		ID:          clientID,
		Secret:      string(hash),
		Label:       "Development kiosk",
		TableNumber: *table,
		Scopes:      "order:create menu:read",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(&client).Error; err != nil {
		log.Fatal("Failed to create client:", err)
	}

	fmt.Println("✓ Development kiosk client created!")
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
	if *table != "" {
		fmt.Printf("Table: %s\n", *table)
	}
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/oauth/token \\\n")
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", clientSecret)
}
