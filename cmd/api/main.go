package main

import (
	"os"

	_ "pos/api/swagger" // swagger docs
	"pos/internal/database"
	"pos/internal/handler"
	"pos/internal/middleware"
	"pos/internal/pdf"
	"pos/internal/repository"
	"pos/internal/service"
	"pos/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// @title           POS Invoicing API
// @version         1.0
// @description     Point-of-sale backend: tax categories, cart checkout, invoice history, PDF export and a sales dashboard.
// @host            localhost:8080
// @BasePath        /
func main() {
	// Missing configs/.env is fine; containers inject env directly.
	_ = godotenv.Load("configs/.env")

	logger.Initialize(getenv("APP_ENV", "development"))
	defer logger.Log.Sync()

	dbHost := getenv("DB_HOST", "localhost")
	dbPort := getenv("DB_PORT", "5432")
	dbUser := getenv("DB_USER", "postgres")
	dbPassword := getenv("DB_PASSWORD", "postgres")
	dbName := getenv("DB_NAME", "pos")
	dbSslMode := getenv("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}
	logger.Log.Info("Connected to PostgreSQL successfully")

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	categoryRepo := repository.NewCategoryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	reportRepo := repository.NewReportRepository(db)

	renderer := pdf.NewRenderer()

	categoryService := service.NewCategoryService(categoryRepo)
	checkoutService := service.NewCheckoutService(categoryRepo, invoiceRepo, txManager)
	invoiceService := service.NewInvoiceService(invoiceRepo, renderer)
	reportService := service.NewReportService(reportRepo)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	reportHandler := handler.NewReportHandler(reportService)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.Metrics())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Request-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Prometheus metrics
	router.GET("/metrics", middleware.MetricsHandler())

	// Register API Routes
	categoryHandler.RegisterRoutes(router.Group(""))
	checkoutHandler.RegisterRoutes(router.Group(""))
	invoiceHandler.RegisterRoutes(router.Group(""))
	reportHandler.RegisterRoutes(router.Group(""))

	port := getenv("PORT", "8080")

	logger.Log.Info("Server listening", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Log.Fatal("Server failed", zap.Error(err))
	}
}
