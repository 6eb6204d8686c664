package controllers

import (
	"errors"
	"net/http"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

type BannerController struct {
	service      services.BannerService
	restaurantID string
}

func NewBannerController(service services.BannerService, restaurantID string) *BannerController {
	return &BannerController{service: service, restaurantID: restaurantID}
}

type bannerRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl" binding:"required"`
	LinkURL  string `json:"linkUrl"`
	Active   *bool  `json:"active"`
}

func (r *bannerRequest) toModel(restaurantID string) models.Banner {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return models.Banner{
		RestaurantID: restaurantID,
		Title:        r.Title,
		Subtitle:     r.Subtitle,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		Active:       active,
	}
}

// GetBanners godoc
// @Summary List banners
// @Tags banners
// @Produce json
// @Param active query bool false "Only active banners"
// @Success 200 {array} models.Banner
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/banners [get]
func (bc *BannerController) GetBanners(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"
	banners, err := bc.service.GetBanners(bc.restaurantID, activeOnly)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve banners"})
		return
	}
	ctx.JSON(http.StatusOK, banners)
}

// CreateBanner godoc
// @Summary Create a banner
// @Tags banners
// @Accept json
// @Produce json
// @Param banner body bannerRequest true "Banner"
// @Success 201 {object} models.Banner
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/banners [post]
func (bc *BannerController) CreateBanner(ctx *gin.Context) {
	var req bannerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := bc.service.CreateBanner(req.toModel(bc.restaurantID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateBanner godoc
// @Summary Update a banner
// @Tags banners
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Param banner body bannerRequest true "Banner"
// @Success 200 {object} models.Banner
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/banners/{id} [put]
func (bc *BannerController) UpdateBanner(ctx *gin.Context) {
	var req bannerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := bc.service.UpdateBanner(ctx.Param("id"), req.toModel(bc.restaurantID))
	if err != nil {
		if errors.Is(err, services.ErrBannerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteBanner godoc
// @Summary Delete a banner
// @Tags banners
// @Produce json
// @Param id path string true "Banner ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/banners/{id} [delete]
func (bc *BannerController) DeleteBanner(ctx *gin.Context) {
	if err := bc.service.DeleteBanner(ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrBannerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
