package controllers

import (
	"errors"
	"net/http"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/ashurar25/FoodOrder-sub000/internal/qr"
	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	service      services.RestaurantService
	qrGenerator  qr.TableCodeGenerator
	restaurantID string
}

func NewRestaurantController(service services.RestaurantService, qrGenerator qr.TableCodeGenerator, restaurantID string) *RestaurantController {
	return &RestaurantController{
		service:      service,
		qrGenerator:  qrGenerator,
		restaurantID: restaurantID,
	}
}

// GetRestaurant godoc
// @Summary Get restaurant metadata
// @Tags restaurant
// @Produce json
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} map[string]string
// @Router /api/v1/public/restaurant [get]
func (rc *RestaurantController) GetRestaurant(ctx *gin.Context) {
	restaurant, err := rc.service.GetRestaurant(rc.restaurantID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	ctx.JSON(http.StatusOK, restaurant)
}

type restaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	LogoURL      string `json:"logoUrl"`
	ReceiptImage string `json:"receiptImage"`
}

// UpdateRestaurant godoc
// @Summary Update restaurant metadata
// @Tags restaurant
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param restaurant body restaurantRequest true "Restaurant"
// @Success 200 {object} models.Restaurant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurant/{id} [put]
func (rc *RestaurantController) UpdateRestaurant(ctx *gin.Context) {
	var req restaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := rc.service.UpdateRestaurant(ctx.Param("id"), models.Restaurant{
		Name:         req.Name,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		ReceiptImage: req.ReceiptImage,
	})
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// GetTableQRCode godoc
// @Summary Table QR code
// @Description PNG QR code encoding the ordering URL for a table, for printing on table stands
// @Tags restaurant
// @Produce png
// @Param number path string true "Table number"
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/tables/{number}/qrcode [get]
func (rc *RestaurantController) GetTableQRCode(ctx *gin.Context) {
	png, err := rc.qrGenerator.Generate(ctx.Param("number"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}
