package auth

import (
	"net/http"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DeviceAuthService issues JWT access tokens to registered self-ordering
// terminals through the OAuth2 client-credentials grant. Browser users
// authenticate with email/password instead; no redirect-based grant exists.
type DeviceAuthService struct {
	server *server.Server
	db     *gorm.DB
}

func NewDeviceAuthService(db *gorm.DB, jwtSecret string) *DeviceAuthService {
	manager := manage.NewDefaultManager()

	// Access tokens are JWTs carrying the device principal and table claim
	manager.MapAccessGenerate(NewDeviceAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS256, db))

	tokenStore := NewGormTokenStore(db)
	manager.MustTokenStorage(tokenStore, nil)

	clientStore := NewGormClientStore(db)
	manager.MapClientStorage(clientStore)

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &DeviceAuthService{
		server: srv,
		db:     db,
	}
}

func (s *DeviceAuthService) GetServer() *server.Server {
	return s.server
}

// HandleToken handles the client-credentials token endpoint for devices
// @Summary Device token endpoint
// @Description Obtain an access token for a registered kiosk/till device
// @Tags auth
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Must be client_credentials"
// @Param client_id formData string true "Device client ID"
// @Param client_secret formData string true "Device client secret"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /oauth/token [post]
func (s *DeviceAuthService) HandleToken(c *gin.Context) {
	if c.PostForm("grant_type") != "client_credentials" {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrUnsupportedGrantType})
		return
	}

	clientID := c.PostForm("client_id")
	clientSecret := c.PostForm("client_secret")

	var client models.DeviceClient
	if err := s.db.Where("id = ?", clientID).First(&client).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrInvalidClient})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.Secret), []byte(clientSecret)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrInvalidClient})
		return
	}

	// The manager re-verifies the secret through ClientPasswordVerifier,
	// so the plain secret must travel with the request
	ti, err := s.server.Manager.GenerateAccessToken(c, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        client.Scopes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token_generation_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": ti.GetAccess(),
		"token_type":   "Bearer",
		"expires_in":   int64(ti.GetAccessExpiresIn().Seconds()),
		"scope":        ti.GetScope(),
	})
}
