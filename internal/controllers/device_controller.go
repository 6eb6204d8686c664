package controllers

import (
	"errors"
	"net/http"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type DeviceController struct {
	deviceService services.DeviceService
}

func NewDeviceController(deviceService services.DeviceService) *DeviceController {
	return &DeviceController{deviceService: deviceService}
}

// CreateClient godoc
// @Summary Register a kiosk device client
// @Description Creates a device credential; the plain secret is returned only once
// @Tags devices
// @Accept json
// @Produce json
// @Param client body object{label=string,tableNumber=string,scopes=string} true "Device details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients [post]
func (dc *DeviceController) CreateClient(c *gin.Context) {
	var req struct {
		Label       string `json:"label" binding:"required"`
		TableNumber string `json:"tableNumber"`
		Scopes      string `json:"scopes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Generate device secret
	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "secret_generation_failed"})
		return
	}

	client := &models.DeviceClient{
		ID:          uuid.New().String(),
		Secret:      string(hashedSecret),
		Label:       req.Label,
		TableNumber: req.TableNumber,
		Scopes:      req.Scopes,
		UserID:      c.GetString("userID"),
	}

	if err := dc.deviceService.CreateClient(client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "client_creation_failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // Return plain secret only once
		"label":         client.Label,
		"table_number":  client.TableNumber,
		"scopes":        client.Scopes,
	})
}

// ListClients godoc
// @Summary List kiosk device clients
// @Tags devices
// @Produce json
// @Success 200 {array} models.DeviceClient
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients [get]
func (dc *DeviceController) ListClients(c *gin.Context) {
	clients, err := dc.deviceService.ListClients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_retrieve_clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Remove a kiosk device client
// @Tags devices
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients/{id} [delete]
func (dc *DeviceController) DeleteClient(c *gin.Context) {
	if err := dc.deviceService.DeleteClient(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "client_deletion_failed"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
