package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DeviceClient is a machine credential for self-ordering terminals (table
// kiosks, till screens) and trusted integrations. Clients obtain short-lived
// JWT access tokens through the client-credentials grant. The secret column
// holds a bcrypt hash; the plain secret is shown once at creation.
type DeviceClient struct {
	ID          string `gorm:"primaryKey"`
	Secret      string `gorm:"not null"`
	Label       string `gorm:"not null"`
	TableNumber string // fixed table for bolted-down kiosks, empty for roaming tills
	Scopes      string // space-separated scope list
	UserID      string `gorm:"index"` // admin user that registered the device
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DeviceClient) TableName() string {
	return "device_clients"
}

// oauth2.ClientInfo implementation.

func (c *DeviceClient) GetID() string     { return c.ID }
func (c *DeviceClient) GetSecret() string { return c.Secret }
func (c *DeviceClient) GetDomain() string { return "" }
func (c *DeviceClient) IsPublic() bool    { return false }
func (c *DeviceClient) GetUserID() string { return c.UserID }

// VerifyPassword implements oauth2.ClientPasswordVerifier so the stored
// bcrypt hash is compared against the plain secret presented at the token
// endpoint.
func (c *DeviceClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}

// DeviceToken records an issued device access token so it can be revoked
// and introspected.
type DeviceToken struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    string `gorm:"index;not null"`
	AccessToken string `gorm:"uniqueIndex;not null"`
	Scopes      string
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
