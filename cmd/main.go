package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	_ "github.com/matapizza/matapizza-api/docs" // Import generated docs
	"github.com/matapizza/matapizza-api/internal/config"
	"github.com/matapizza/matapizza-api/internal/controllers"
	"github.com/matapizza/matapizza-api/internal/database"
	"github.com/matapizza/matapizza-api/internal/middleware"
	"github.com/matapizza/matapizza-api/internal/services"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                    *gorm.DB
	pizzaTypeController   controllers.PizzaTypeController
	pizzaController       controllers.PizzaController
	orderController       controllers.OrderController
	orderDetailController controllers.OrderDetailController
	csvImportController   controllers.CsvImportController
	configuration         *config.Config
)

// @title MataPizza API
// @version 1.0
// @description Read-only catalog and order history API for the MataPizza frontend
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

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	pizzaTypeController = controllers.NewPizzaTypeController(services.NewPizzaTypeService(db))
	pizzaController = controllers.NewPizzaController(services.NewPizzaService(db))
	orderController = controllers.NewOrderController(services.NewOrderService(db))
	orderDetailController = controllers.NewOrderDetailController(services.NewOrderDetailService(db))
	csvImportController = controllers.NewCsvImportController(
		services.NewCsvImporter(db, configuration.ImportDataDir))

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
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
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(configuration.FrontendOrigin))

	// Define routes
	setupRoutes(router)

	return router
}

// Add this handler for testing.
// TODO remove when authorization service is implemented
func generateTestTokenHandler(c *gin.Context) {
	// Create test claims
	claims := jwt.MapClaims{
		"user": "test-user-123",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 24).Unix(), // 24 hours
		"iat":  time.Now().Unix(),
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(configuration.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      tokenString,
		"type":       "Bearer",
		"expires_in": 86400, // 24 hours in seconds
	})
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Test token generation endpoint
	router.GET("/test-token", generateTestTokenHandler)

	// Pizza type routes
	router.GET("/pizzatypes", pizzaTypeController.GetAllPizzaTypes)
	router.GET("/pizzatypes/paginated", pizzaTypeController.GetPaginatedPizzaTypes)
	router.GET("/pizzatypes/category", pizzaTypeController.GetCategories)
	router.GET("/pizzatypes/:id", pizzaTypeController.GetPizzaTypeByID)

	// Pizza routes
	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.GET("/pizzas/:id", pizzaController.GetPizzaByID)

	// Order routes
	router.GET("/orders", orderController.GetAllOrders)
	router.GET("/orders/paginated", orderController.GetPaginatedOrders)
	router.GET("/orders/:id", orderController.GetOrderByID)

	// Order detail routes
	router.GET("/orderdetails", orderDetailController.GetAllOrderDetails)
	router.GET("/orderdetails/:id", orderDetailController.GetOrderDetailByID)

	// Import trigger; admin only because a concurrent second run against
	// the same database is unsafe while ids are being resynced
	csvImport := router.Group("/csvimport")
	csvImport.Use(middleware.JWTAuth(), middleware.RequireRole("admin"))
	{
		csvImport.POST("/import-all", csvImportController.ImportAll)
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
		"service":   "matapizza-api",
	})
}
