package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	// Public endpoint; per-IP rate limiting guards the mail transport
	router.POST("/contact", m.ContactRateLimit.Middleware(), h.Contact.Submit)
}
