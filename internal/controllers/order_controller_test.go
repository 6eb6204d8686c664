package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashurar25/FoodOrder-sub000/internal/middleware"
	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

type testEnv struct {
	router       *gin.Engine
	db           *gorm.DB
	restaurantID string
	foodItem     models.FoodItem
}

// setupOrderEnv wires the auth and order controllers behind the same
// middleware chain the server uses.
func setupOrderEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Restaurant{},
		&models.Category{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
		&models.AuditLog{},
	))

	restaurant := models.Restaurant{Name: "Test Kitchen"}
	require.NoError(t, db.Create(&restaurant).Error)
	category := models.Category{RestaurantID: restaurant.ID, Name: "Mains"}
	require.NoError(t, db.Create(&category).Error)
	item := models.FoodItem{
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		Name:         "Pad Thai",
		Price:        decimal.RequireFromString("15.00"),
		Available:    true,
	}
	require.NoError(t, db.Create(&item).Error)

	middleware.SetJWTSecret(testJWTSecret)

	userService := services.NewUserService(db)
	orderService := services.NewOrderService(db, true)
	authController := NewAuthController(userService, testJWTSecret)
	orderController := NewOrderController(orderService, restaurant.ID)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/auth/register", authController.Register)
	router.POST("/api/v1/auth/login", authController.Login)

	protected := router.Group("/api/v1/protected")
	protected.Use(middleware.JWTAuth())
	protected.POST("/orders", orderController.CreateOrder)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("/orders", orderController.ListOrders)
	admin.PUT("/orders/:id/status", orderController.UpdateOrderStatus)
	admin.DELETE("/orders", orderController.ResetOrders)

	return &testEnv{router: router, db: db, restaurantID: restaurant.ID, foodItem: item}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns its access token.
func (e *testEnv) registerAndLogin(t *testing.T, email, role string) string {
	w := e.do("POST", "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     "Som",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if role != models.RoleCustomer {
		require.NoError(t, e.db.Model(&models.User{}).
			Where("email = ?", email).
			Update("role", role).Error)
	}

	w = e.do("POST", "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (e *testEnv) checkoutPayload() gin.H {
	return gin.H{
		"items": []gin.H{
			{"foodItemId": e.foodItem.ID, "quantity": 2, "price": "15.00"},
		},
		"total":        "30.00",
		"customerName": "Som",
		"tableNumber":  "A1",
	}
}

func TestCheckoutOverHTTP(t *testing.T) {
	env := setupOrderEnv(t)
	token := env.registerAndLogin(t, "som@example.com", models.RoleCustomer)

	w := env.do("POST", "/api/v1/protected/orders", token, env.checkoutPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("30.00")))
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "A1", order.TableNumber)
}

func TestCheckoutRequiresToken(t *testing.T) {
	env := setupOrderEnv(t)

	w := env.do("POST", "/api/v1/protected/orders", "", env.checkoutPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutRejectsTamperedTotalOverHTTP(t *testing.T) {
	env := setupOrderEnv(t)
	token := env.registerAndLogin(t, "som@example.com", models.RoleCustomer)

	payload := env.checkoutPayload()
	payload["total"] = "0.02"
	payload["items"] = []gin.H{
		{"foodItemId": env.foodItem.ID, "quantity": 2, "price": "0.01"},
	}

	w := env.do("POST", "/api/v1/protected/orders", token, payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrOrderTotalMismatch, apiErr.Code)
}

func TestAdminOrderSurfaceForbiddenForCustomers(t *testing.T) {
	env := setupOrderEnv(t)
	token := env.registerAndLogin(t, "som@example.com", models.RoleCustomer)

	w := env.do("GET", "/api/v1/protected/admin/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do("DELETE", "/api/v1/protected/admin/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOrderWorkflow(t *testing.T) {
	env := setupOrderEnv(t)
	customer := env.registerAndLogin(t, "som@example.com", models.RoleCustomer)
	admin := env.registerAndLogin(t, "boss@example.com", models.RoleAdmin)

	w := env.do("POST", "/api/v1/protected/orders", customer, env.checkoutPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = env.do("GET", "/api/v1/protected/admin/orders", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)

	statusPath := fmt.Sprintf("/api/v1/protected/admin/orders/%s/status", order.ID)
	w = env.do("PUT", statusPath, admin, gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Preparing orders are already on the line and cannot be cancelled
	w = env.do("PUT", statusPath, admin, gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrOrderBadTransition, apiErr.Code)

	w = env.do("PUT", "/api/v1/protected/admin/orders/missing/status", admin, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do("DELETE", "/api/v1/protected/admin/orders", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reset struct {
		Wiped int64 `json:"wiped"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reset))
	assert.Equal(t, int64(1), reset.Wiped)

	var audit models.AuditLog
	require.NoError(t, env.db.Where("action = ?", "orders.reset").First(&audit).Error)
	assert.NotEmpty(t, audit.ActorID)
}
