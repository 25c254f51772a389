package router

import (
	"time"

	"github.com/slidesmith/ppt-generator-service/internal/config"
	"github.com/slidesmith/ppt-generator-service/internal/handlers"
	"github.com/slidesmith/ppt-generator-service/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the Gin router with the generation endpoints
func SetupRouter(cfg *config.Config) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create middleware with services
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(cfg.APIKey)

	// Create handlers with services
	generateHandler := handlers.NewGenerateHandler(cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "Service is healthy",
		})
	})

	r.POST("/generate-ppt", apiKeyMiddleware.APIKeyAuthMiddleware(), generateHandler.GeneratePPT)

	return r
}
