package auth

import (
	"context"
	"fmt"

	internalmodels "github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// RoleKiosk is the principal role minted into device access tokens. It is
// accepted by the checkout endpoint but never by admin surfaces.
const RoleKiosk = "kiosk"

// DeviceAccessGenerate generates JWT access tokens for device clients with
// the claims the API middleware expects: uid (the device client id), role
// (always kiosk) and, for bolted-down terminals, the fixed table number.
type DeviceAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	DB           *gorm.DB // used to fetch the device's fixed table assignment
}

// NewDeviceAccessGenerate creates a new device JWT access token generator
func NewDeviceAccessGenerate(key []byte, method jwt.SigningMethod, db *gorm.DB) *DeviceAccessGenerate {
	return &DeviceAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		DB:           db,
	}
}

// Token generates a JWT access token. Called by the OAuth2 library when a
// device completes the client-credentials grant.
func (g *DeviceAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	clientID := data.Client.GetID()
	if clientID == "" {
		return "", "", fmt.Errorf("cannot generate token: no client ID available")
	}

	claims := jwt.MapClaims{
		"aud":  clientID,
		"uid":  clientID,
		"role": RoleKiosk,
		"iat":  data.TokenInfo.GetAccessCreateAt().Unix(),
		"exp":  data.TokenInfo.GetAccessCreateAt().Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}

	table, err := g.deviceTable(clientID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch device table assignment: %w", err)
	}
	if table != "" {
		claims["table"] = table
	}

	if data.TokenInfo.GetScope() != "" {
		claims["scope"] = data.TokenInfo.GetScope()
	}

	token := jwt.NewWithClaims(g.SignedMethod, claims)
	access, err := token.SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	// Devices re-authenticate with their credentials; no refresh tokens
	return access, "", nil
}

// deviceTable fetches the device's fixed table number, if any
func (g *DeviceAccessGenerate) deviceTable(clientID string) (string, error) {
	var client internalmodels.DeviceClient
	if err := g.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("device client %s not found", clientID)
		}
		return "", fmt.Errorf("database error: %w", err)
	}
	return client.TableNumber, nil
}
