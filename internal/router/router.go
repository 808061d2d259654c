package router

import (
	"github.com/gin-gonic/gin"

	"plaindoc/internal/handler"
	"plaindoc/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	uploadH *handler.UploadHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")
	v1.POST("/uploads", uploadH.Upload)

	return r
}
