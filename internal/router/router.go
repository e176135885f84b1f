package router

import (
	"github.com/gin-gonic/gin"

	"cargoscan/internal/config"
	"cargoscan/internal/handler"
	"cargoscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractH *handler.ExtractHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	extract := v1.Group("/extract")
	extract.POST("", extractH.Extract)
	extract.POST("/raw-text", extractH.ExtractRawText)
	extract.POST("/export/csv", extractH.ExportCSV)
	extract.POST("/export/xlsx", extractH.ExportXLSX)

	return r
}
