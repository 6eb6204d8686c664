package services

import (
	"testing"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLifecycle(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	user := &models.User{Email: "som@example.com", Password: "secret123", Name: "Som", Role: models.RoleCustomer}
	require.NoError(t, user.HashPassword())
	require.NoError(t, service.CreateUser(user))
	assert.NotEmpty(t, user.ID)

	// Duplicate email is rejected
	dup := &models.User{Email: "som@example.com", Password: "secret123", Name: "Other"}
	require.NoError(t, dup.HashPassword())
	assert.ErrorIs(t, service.CreateUser(dup), ErrUserExists)

	fetched, err := service.GetUserByEmail("som@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.True(t, fetched.CheckPassword("secret123"))
	assert.False(t, fetched.CheckPassword("wrong"))

	updated, err := service.UpdateProfile(user.ID, "Somchai")
	require.NoError(t, err)
	assert.Equal(t, "Somchai", updated.Name)

	promoted, err := service.UpdateRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	_, err = service.UpdateRole(user.ID, "superuser")
	assert.Error(t, err)

	require.NoError(t, service.DeleteUser(user.ID, "admin-1"))
	_, err = service.GetUserByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Deletion is a destructive admin action and leaves an audit trail
	var audit models.AuditLog
	require.NoError(t, db.Where("action = ?", "users.delete").First(&audit).Error)
	assert.Equal(t, "admin-1", audit.ActorID)
}

func TestUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	_, err := service.GetUserByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = service.UpdateProfile("missing", "Name")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = service.DeleteUser("missing", "admin-1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// A failed delete must not leave an audit row behind
	var count int64
	db.Model(&models.AuditLog{}).Where("action = ?", "users.delete").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBannerLifecycle(t *testing.T) {
	db := setupTestDB(t)
	restaurant := models.Restaurant{Name: "Test Kitchen"}
	require.NoError(t, db.Create(&restaurant).Error)

	service := NewBannerService(db)

	created, err := service.CreateBanner(models.Banner{
		RestaurantID: restaurant.ID,
		Title:        "Lunch Special",
		ImageURL:     "https://cdn.example.com/lunch.png",
		Active:       true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created.Active = false
	updated, err := service.UpdateBanner(created.ID, created)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	// Public listing only shows active banners
	active, err := service.GetBanners(restaurant.ID, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := service.GetBanners(restaurant.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, service.DeleteBanner(created.ID))
	assert.ErrorIs(t, service.DeleteBanner(created.ID), ErrBannerNotFound)
}
