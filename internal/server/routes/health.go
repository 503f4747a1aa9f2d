package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.RouterGroup, h *Handlers) {
	router.GET("/health", h.Health.Check)
}
