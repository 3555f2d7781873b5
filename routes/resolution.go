package routes

import (
	"github.com/gin-gonic/gin"

	"venuepilot/handlers"
)

// RegisterRoutes registers all endpoints for the resolution service.
func RegisterRoutes(r *gin.Engine, resolutionHandler *handlers.ResolutionHandler) {
	r.GET("/api/health", handlers.HealthHandler)

	res := r.Group("/api/resolution")
	{
		res.POST("/resolve", resolutionHandler.ResolveBookingHandler)
		res.POST("/availability", resolutionHandler.CheckAvailabilityHandler)
	}
}
