package routes

import (
	"net/http"

	"github.com/luminadental/lumina/internal/api/dto/common"
	"github.com/luminadental/lumina/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	api := router.Group("/api")

	SetupHealthRoutes(api, h)
	SetupSiteRoutes(api, h)
	SetupContactRoutes(api, h, m)

	// Unmatched routes get the fixed 404 envelope
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("API endpoint not found"))
	})

	logger.Info("All routes have been set up successfully")
}
