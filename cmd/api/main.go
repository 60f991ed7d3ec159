package main

import (
	"fmt"
	"net/http"
	"os"

	"investhub/internal/config"
	"investhub/internal/database"
	"investhub/internal/handlers"
	"investhub/internal/logger"
	"investhub/internal/middleware"
	"investhub/internal/services"
	"investhub/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "investhub/internal/docs" // Import swagger docs
)

// @title           InvestHub API
// @version         1.0
// @description     InvestHub is an investment-products marketplace: browse and filter a curated catalog of bonds, FDs, mutual funds and more, estimate returns, and view a demo portfolio dashboard.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Create schema and seed the catalog
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	if err := dbManager.Seed(appConfig.DemoEmail, appConfig.DemoPassword); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	catalogService := services.NewCatalogService(db)
	projectionService := services.NewProjectionService(catalogService)
	userService := services.NewUserService(db)
	portfolioService := services.NewPortfolioService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, projectionService)
	authHandler := handlers.NewAuthHandler(userService, auditService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Catalog routes (public: the marketplace is browsable without login)
	products := v1.Group("/products")
	products.GET("", catalogHandler.ListProducts)
	products.GET("/:id", catalogHandler.GetProduct)
	products.GET("/:id/projection", catalogHandler.GetProjection)

	providers := v1.Group("/providers")
	providers.GET("", catalogHandler.ListProviders)
	providers.GET("/:id", catalogHandler.GetProvider)

	v1.GET("/asset-types", catalogHandler.ListAssetTypes)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/portfolio", portfolioHandler.GetPortfolio)
	protected.GET("/orders", portfolioHandler.GetOrders)

	log.Infof("Starting InvestHub backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
