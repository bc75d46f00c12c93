package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shelfcheck/backend/config"
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

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes: a read-only view over persisted verification records.
	v1 := router.Group("/api/v1")
	{
		records := v1.Group("/records")
		{
			records.GET("", handler.ListRecords)
			records.GET("/summary", handler.GetSummary)
			records.GET("/:id", handler.GetRecord)
		}
	}

	return router
}
