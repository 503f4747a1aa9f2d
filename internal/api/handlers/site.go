package handlers

import (
	"net/http"
	"strconv"

	"github.com/luminadental/lumina/internal/gallery"
	"github.com/luminadental/lumina/internal/site"
	"github.com/luminadental/lumina/internal/utils"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	config     *site.SiteConfig
	collection *gallery.Collection
}

func NewSiteHandler(config *site.SiteConfig) *SiteHandler {
	return &SiteHandler{
		config:     config,
		collection: gallery.NewCollection(config.Gallery.Items),
	}
}

// GetConfig returns the full site content the SPA renders.
func (h *SiteHandler) GetConfig(c *gin.Context) {
	utils.HandleData(c, h.config)
}

// GetGallery returns gallery items, optionally filtered by exact category.
// An absent or ALL category yields the full list in original order.
func (h *SiteHandler) GetGallery(c *gin.Context) {
	category := c.DefaultQuery("category", gallery.CategoryAll)
	items := h.collection.Filter(category)
	if items == nil {
		items = []site.GalleryItem{}
	}

	utils.HandleData(c, gin.H{
		"category": category,
		"items":    items,
	})
}

// GetGalleryItem returns a single gallery case by id.
func (h *SiteHandler) GetGalleryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.HandleAPIError(c, nil, http.StatusNotFound, "Gallery item not found")
		return
	}

	item, ok := h.collection.Get(id)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusNotFound, "Gallery item not found")
		return
	}

	utils.HandleData(c, item)
}
