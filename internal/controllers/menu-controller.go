package controllers

import (
	"errors"
	"net/http"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MenuController handles category and food item requests. The restaurant id
// is resolved once at startup; nothing here relies on "first row" reads.
type MenuController struct {
	service      services.MenuService
	restaurantID string
}

func NewMenuController(service services.MenuService, restaurantID string) *MenuController {
	return &MenuController{service: service, restaurantID: restaurantID}
}

// GetCategories godoc
// @Summary List menu categories
// @Description Categories in creation order for the restaurant
// @Tags menu
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/categories [get]
func (mc *MenuController) GetCategories(ctx *gin.Context) {
	categories, err := mc.service.GetCategories(mc.restaurantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// CreateCategory godoc
// @Summary Create a category
// @Tags menu
// @Accept json
// @Produce json
// @Param category body categoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/categories [post]
func (mc *MenuController) CreateCategory(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := mc.service.CreateCategory(models.Category{
		RestaurantID: mc.restaurantID,
		Name:         req.Name,
		Icon:         req.Icon,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body categoryRequest true "Category"
// @Success 200 {object} models.Category
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/categories/{id} [put]
func (mc *MenuController) UpdateCategory(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := mc.service.UpdateCategory(ctx.Param("id"), models.Category{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Fails with 409 while food items still reference the category
// @Tags menu
// @Produce json
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/categories/{id} [delete]
func (mc *MenuController) DeleteCategory(ctx *gin.Context) {
	err := mc.service.DeleteCategory(ctx.Param("id"))
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
	case errors.Is(err, services.ErrCategoryInUse):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrCategoryInUse,
			"Category still has food items; move or delete them first"))
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
	default:
		ctx.JSON(http.StatusNoContent, nil)
	}
}

// GetFoodItems godoc
// @Summary List food items
// @Description Food items in creation order, optionally filtered by category
// @Tags menu
// @Produce json
// @Param category_id query string false "Filter by category ID"
// @Success 200 {array} models.FoodItem
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/food-items [get]
func (mc *MenuController) GetFoodItems(ctx *gin.Context) {
	items, err := mc.service.GetFoodItems(mc.restaurantID, ctx.Query("category_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve food items"})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetFoodItemByID godoc
// @Summary Get food item by ID
// @Tags menu
// @Produce json
// @Param id path string true "Food item ID"
// @Success 200 {object} models.FoodItem
// @Failure 404 {object} map[string]string
// @Router /api/v1/public/food-items/{id} [get]
func (mc *MenuController) GetFoodItemByID(ctx *gin.Context) {
	item, err := mc.service.GetFoodItemByID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	ctx.JSON(http.StatusOK, item)
}

type foodItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	CategoryID  string          `json:"categoryId" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Rating      decimal.Decimal `json:"rating"`
	Available   *bool           `json:"available"`
}

func (r *foodItemRequest) toModel(restaurantID string) models.FoodItem {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return models.FoodItem{
		RestaurantID: restaurantID,
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
		Rating:       r.Rating,
		Available:    available,
	}
}

// CreateFoodItem godoc
// @Summary Create a food item
// @Tags menu
// @Accept json
// @Produce json
// @Param item body foodItemRequest true "Food item"
// @Success 201 {object} models.FoodItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/food-items [post]
func (mc *MenuController) CreateFoodItem(ctx *gin.Context) {
	var req foodItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.Price.IsPositive() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	created, err := mc.service.CreateFoodItem(req.toModel(mc.restaurantID))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create food item"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateFoodItem godoc
// @Summary Update a food item
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Food item ID"
// @Param item body foodItemRequest true "Food item"
// @Success 200 {object} models.FoodItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/food-items/{id} [put]
func (mc *MenuController) UpdateFoodItem(ctx *gin.Context) {
	var req foodItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.Price.IsPositive() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	updated, err := mc.service.UpdateFoodItem(ctx.Param("id"), req.toModel(mc.restaurantID))
	if err != nil {
		if errors.Is(err, services.ErrFoodItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteFoodItem godoc
// @Summary Delete a food item
// @Tags menu
// @Produce json
// @Param id path string true "Food item ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/food-items/{id} [delete]
func (mc *MenuController) DeleteFoodItem(ctx *gin.Context) {
	err := mc.service.DeleteFoodItem(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFoodItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food item"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
