package router

import (
	"github.com/gin-gonic/gin"

	"mrpending/internal/handler"
	"mrpending/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Statement extraction lifecycle
	reports := v1.Group("/reports")
	reports.POST("", reportH.Upload)
	reports.GET("/current", reportH.Current)
	reports.DELETE("/current", reportH.Reset)
	reports.GET("/current/mrs/:index/summary", reportH.Summary)

	return r
}
