package controllers

import (
	"errors"
	"net/http"

	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service services.UserService
}

func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/profile [get]
func (uc *UserController) GetProfile(ctx *gin.Context) {
	user, err := uc.service.GetUserByID(ctx.GetString("userID"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param body body object{name=string} true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/profile [put]
func (uc *UserController) UpdateProfile(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := uc.service.UpdateProfile(ctx.GetString("userID"), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/users [get]
func (uc *UserController) ListUsers(ctx *gin.Context) {
	users, err := uc.service.ListUsers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body object{role=string} true "Role: customer or admin"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/users/{id}/role [put]
func (uc *UserController) UpdateUserRole(ctx *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := uc.service.UpdateRole(ctx.Param("id"), req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/users/{id} [delete]
func (uc *UserController) DeleteUser(ctx *gin.Context) {
	// Admins cannot delete themselves
	if ctx.Param("id") == ctx.GetString("userID") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	if err := uc.service.DeleteUser(ctx.Param("id"), ctx.GetString("userID")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
