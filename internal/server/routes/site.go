package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupSiteRoutes configures the content endpoints the SPA reads
func SetupSiteRoutes(router *gin.RouterGroup, h *Handlers) {
	router.GET("/config", h.Site.GetConfig)
	router.GET("/gallery", h.Site.GetGallery)
	router.GET("/gallery/:id", h.Site.GetGalleryItem)
	router.GET("/credentials", h.Credentials.Get)
}
