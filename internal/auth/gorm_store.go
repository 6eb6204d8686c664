package auth

import (
	"context"
	"errors"
	"time"

	internalmodels "github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"
)

// ErrCodeGrantUnsupported is returned by the authorization-code paths of
// the token store; only the client-credentials grant is enabled.
var ErrCodeGrantUnsupported = errors.New("authorization code grant not supported")

type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client internalmodels.DeviceClient
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}

	// DeviceClient implements ClientPasswordVerifier, so the library checks
	// the presented secret against the stored bcrypt hash
	return &client, nil
}

type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	token := &internalmodels.DeviceToken{
		ClientID:    info.GetClientID(),
		AccessToken: info.GetAccess(),
		Scopes:      info.GetScope(),
		ExpiresAt:   info.GetAccessCreateAt().Add(info.GetAccessExpiresIn()),
	}

	return s.db.Create(token).Error
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.Where("access_token = ?", access).Delete(&internalmodels.DeviceToken{}).Error
}

func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	var token internalmodels.DeviceToken
	if err := s.db.Where("access_token = ?", access).First(&token).Error; err != nil {
		return nil, err
	}

	if time.Now().After(token.ExpiresAt) {
		return nil, gorm.ErrRecordNotFound
	}

	return &models.Token{
		ClientID:        token.ClientID,
		Access:          token.AccessToken,
		AccessExpiresIn: time.Until(token.ExpiresAt),
		Scope:           token.Scopes,
	}, nil
}

// Refresh and authorization-code grants are disabled for device clients;
// the remaining TokenStore methods exist only to satisfy the interface.

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return ErrCodeGrantUnsupported
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	return nil, ErrCodeGrantUnsupported
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	return nil, ErrCodeGrantUnsupported
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return ErrCodeGrantUnsupported
}
