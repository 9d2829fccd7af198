package http

import (
	"github.com/gin-gonic/gin"
	"github.com/taglens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Connectivity and health endpoints
	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)
	router.GET("/test", handler.Diagnostics)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/hello", handler.Hello)
		api.POST("/extract-tag", handler.ExtractTag)

		api.POST("/bills", handler.CreateBill)
		api.GET("/bills", handler.ListBills)
	}

	return router
}
