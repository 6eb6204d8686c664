package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/ashurar25/FoodOrder-sub000/docs" // Import generated docs
	"github.com/ashurar25/FoodOrder-sub000/internal/auth"
	"github.com/ashurar25/FoodOrder-sub000/internal/cache"
	"github.com/ashurar25/FoodOrder-sub000/internal/config"
	"github.com/ashurar25/FoodOrder-sub000/internal/controllers"
	"github.com/ashurar25/FoodOrder-sub000/internal/database"
	"github.com/ashurar25/FoodOrder-sub000/internal/middleware"
	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/ashurar25/FoodOrder-sub000/internal/qr"
	"github.com/ashurar25/FoodOrder-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config

	restaurantController *controllers.RestaurantController
	menuController       *controllers.MenuController
	bannerController     *controllers.BannerController
	orderController      *controllers.OrderController
	authController       *controllers.AuthController
	userController       *controllers.UserController
	deviceController     *controllers.DeviceController
	deviceAuth           *auth.DeviceAuthService
)

// @title FoodOrder API
// @version 1.0
// @description Restaurant self-ordering backend: menu, checkout and back office
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection, schema and seed data
	restaurant := setupDatabase(configuration)

	// Initialize services and controllers
	wireComponents(restaurant)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Wrap with CORS for the web client
	handler := corsHandler(configuration).Handler(router)

	// Start the server
	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	log.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates the schema and seeds the initial
// restaurant and category rows. Returns the active restaurant.
func setupDatabase(conf *config.Config) *models.Restaurant {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	restaurant, err := database.Seed(db)
	checkPanicErr(err)
	return restaurant
}

// wireComponents builds services and controllers around the resolved
// restaurant id; no handler reads an implicit "first row"
func wireComponents(restaurant *models.Restaurant) {
	menuCache := cache.NewMenuCache(configuration.RedisAddr,
		time.Duration(configuration.MenuCacheTTLSec)*time.Second)
	if menuCache != nil {
		log.WithField("redis_addr", configuration.RedisAddr).Info("Menu cache enabled")
	}

	restaurantService := services.NewRestaurantService(db)
	menuService := services.NewMenuService(db, menuCache)
	bannerService := services.NewBannerService(db)
	orderService := services.NewOrderService(db, configuration.RequireTableNumber)
	userService := services.NewUserService(db)
	deviceService := services.NewDeviceService(db)

	qrGenerator := qr.TableCodeGenerator{BaseURL: configuration.PublicBaseURL}

	restaurantController = controllers.NewRestaurantController(restaurantService, qrGenerator, restaurant.ID)
	menuController = controllers.NewMenuController(menuService, restaurant.ID)
	bannerController = controllers.NewBannerController(bannerService, restaurant.ID)
	orderController = controllers.NewOrderController(orderService, restaurant.ID)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
	userController = controllers.NewUserController(userService)
	deviceController = controllers.NewDeviceController(deviceService)
	deviceAuth = auth.NewDeviceAuthService(db, configuration.JWTSecret)
}

// corsHandler builds the CORS wrapper. With no configured origins the
// permissive default is used (development).
func corsHandler(conf *config.Config) *cors.Cors {
	if len(conf.AllowedOrigins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Options{
		AllowedOrigins:   conf.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Device (kiosk) token endpoint
	router.POST("/oauth/token", deviceAuth.HandleToken)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/restaurant", restaurantController.GetRestaurant)
			publicApi.GET("/categories", menuController.GetCategories)
			publicApi.GET("/food-items", menuController.GetFoodItems)
			publicApi.GET("/food-items/:id", menuController.GetFoodItemByID)
			publicApi.GET("/banners", bannerController.GetBanners)
			publicApi.GET("/tables/:number/qrcode", restaurantController.GetTableQRCode)
		}

		// Authentication routes (public but for auth purposes)
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth())
		{
			protectedApi.POST("/orders", orderController.CreateOrder)
			protectedApi.GET("/profile", userController.GetProfile)
			protectedApi.PUT("/profile", userController.UpdateProfile)

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminApi.PUT("/restaurant/:id", restaurantController.UpdateRestaurant)

				adminApi.POST("/categories", menuController.CreateCategory)
				adminApi.PUT("/categories/:id", menuController.UpdateCategory)
				adminApi.DELETE("/categories/:id", menuController.DeleteCategory)

				adminApi.POST("/food-items", menuController.CreateFoodItem)
				adminApi.PUT("/food-items/:id", menuController.UpdateFoodItem)
				adminApi.DELETE("/food-items/:id", menuController.DeleteFoodItem)

				adminApi.POST("/banners", bannerController.CreateBanner)
				adminApi.PUT("/banners/:id", bannerController.UpdateBanner)
				adminApi.DELETE("/banners/:id", bannerController.DeleteBanner)

				adminApi.GET("/orders", orderController.ListOrders)
				adminApi.GET("/orders/:id", orderController.GetOrderByID)
				adminApi.PUT("/orders/:id/status", orderController.UpdateOrderStatus)
				adminApi.DELETE("/orders", orderController.ResetOrders)

				adminApi.GET("/users", userController.ListUsers)
				adminApi.PUT("/users/:id/role", userController.UpdateUserRole)
				adminApi.DELETE("/users/:id", userController.DeleteUser)

				adminApi.POST("/clients", deviceController.CreateClient)
				adminApi.GET("/clients", deviceController.ListClients)
				adminApi.DELETE("/clients/:id", deviceController.DeleteClient)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "foodorder-api",
	})
}
