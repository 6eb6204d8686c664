package controllers

import (
	"errors"
	"net/http"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service      services.OrderService
	restaurantID string
}

func NewOrderController(service services.OrderService, restaurantID string) *OrderController {
	return &OrderController{service: service, restaurantID: restaurantID}
}

// CreateOrder godoc
// @Summary Submit an order (checkout)
// @Description Validates the cart, recomputes the total server-side and persists the order atomically
// @Tags orders
// @Accept json
// @Produce json
// @Param order body services.CreateOrderRequest true "Checkout payload"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [post]
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req services.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	// Kiosk tokens carry a fixed table assignment; it wins over the payload
	if table, ok := ctx.Get("tableNumber"); ok {
		if tableStr, ok := table.(string); ok && tableStr != "" {
			req.TableNumber = tableStr
		}
	}

	order, err := oc.service.CreateOrder(oc.restaurantID, req)
	if err != nil {
		oc.respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

func (oc *OrderController) respondCheckoutError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCustomerNameRequired):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Customer name is required"))
	case errors.Is(err, services.ErrTableNumberRequired):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Table number is required"))
	case errors.Is(err, services.ErrEmptyOrder):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrOrderEmpty, "Cart is empty"))
	case errors.Is(err, services.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Item quantity must be at least 1"))
	case errors.Is(err, services.ErrFoodItemNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrFoodItemNotFound, "Ordered item no longer exists"))
	case errors.Is(err, services.ErrFoodItemUnavailable):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrValidationFailed, "Ordered item is currently unavailable"))
	case errors.Is(err, services.ErrTotalMismatch):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrOrderTotalMismatch, "Submitted total does not match current menu prices"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create order"))
	}
}

// ListOrders godoc
// @Summary List orders
// @Description All orders for the restaurant, newest first, items included
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders [get]
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	orders, err := oc.service.ListOrders(oc.restaurantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get one order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders/{id} [get]
func (oc *OrderController) GetOrderByID(ctx *gin.Context) {
	order, err := oc.service.GetOrderByID(ctx.Param("id"))
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
	default:
		ctx.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus godoc
// @Summary Transition an order's status
// @Description Moves an order to pending, preparing, confirmed or cancelled; only whitelisted transitions are accepted
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body object{status=string} true "Target status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders/{id}/status [put]
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := oc.service.UpdateStatus(ctx.Param("id"), req.Status)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, services.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Unknown order status"))
	case errors.Is(err, services.ErrInvalidTransition):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrOrderBadTransition, err.Error()))
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
	default:
		ctx.JSON(http.StatusOK, order)
	}
}

// ResetOrders godoc
// @Summary Wipe all orders
// @Description Admin-only bulk reset; the acting admin is recorded in the audit log
// @Tags orders
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders [delete]
func (oc *OrderController) ResetOrders(ctx *gin.Context) {
	actorID := ctx.GetString("userID")

	wiped, err := oc.service.ResetOrders(oc.restaurantID, actorID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset orders"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"wiped": wiped})
}
