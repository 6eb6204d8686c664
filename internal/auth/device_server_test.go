package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DeviceClient{}, &models.DeviceToken{}))
	return db
}

func setupTokenRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	service := NewDeviceAuthService(db, testJWTSecret)
	require.NotNil(t, service)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", service.HandleToken)
	return router
}

func createTestDevice(t *testing.T, db *gorm.DB, id, secret, table string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	require.NoError(t, err)
	client := &models.DeviceClient{
		ID:          id,
		Secret:      string(hash),
		Label:       "Test kiosk",
		TableNumber: table,
		Scopes:      "order:create menu:read",
	}
	require.NoError(t, db.Create(client).Error)
}

func postToken(router *gin.Engine, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/oauth/token", bytes.NewBufferString(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDeviceClientCredentialsFlow(t *testing.T) {
	db := setupTestDB(t)
	createTestDevice(t, db, "kiosk-7", "kiosk_secret", "7")
	router := setupTokenRouter(t, db)

	w := postToken(router, "grant_type=client_credentials&client_id=kiosk-7&client_secret=kiosk_secret")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])
	assert.Contains(t, response, "access_token")
	assert.Greater(t, response["expires_in"].(float64), float64(0))

	// The access token is a JWT carrying the kiosk principal and the
	// device's fixed table assignment
	accessToken := response["access_token"].(string)
	parsed, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "kiosk-7", claims["uid"])
	assert.Equal(t, RoleKiosk, claims["role"])
	assert.Equal(t, "7", claims["table"])
}

func TestDeviceTokenOmitsTableForRoamingTill(t *testing.T) {
	db := setupTestDB(t)
	createTestDevice(t, db, "till-1", "till_secret", "")
	router := setupTokenRouter(t, db)

	w := postToken(router, "grant_type=client_credentials&client_id=till-1&client_secret=till_secret")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	parsed, err := jwt.Parse(response["access_token"].(string), func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	_, hasTable := claims["table"]
	assert.False(t, hasTable)
}

func TestDeviceTokenInvalidSecret(t *testing.T) {
	db := setupTestDB(t)
	createTestDevice(t, db, "kiosk-7", "correct_secret", "7")
	router := setupTokenRouter(t, db)

	w := postToken(router, "grant_type=client_credentials&client_id=kiosk-7&client_secret=wrong_secret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeviceTokenUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	router := setupTokenRouter(t, db)

	w := postToken(router, "grant_type=client_credentials&client_id=ghost&client_secret=whatever")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeviceTokenRejectsOtherGrants(t *testing.T) {
	db := setupTestDB(t)
	createTestDevice(t, db, "kiosk-7", "kiosk_secret", "7")
	router := setupTokenRouter(t, db)

	w := postToken(router, "grant_type=authorization_code&client_id=kiosk-7&client_secret=kiosk_secret&code=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
