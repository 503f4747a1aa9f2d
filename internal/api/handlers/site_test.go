package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luminadental/lumina/internal/site"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSiteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewSiteHandler(site.DefaultSiteConfig())
	router := gin.New()
	router.GET("/api/config", handler.GetConfig)
	router.GET("/api/gallery", handler.GetGallery)
	router.GET("/api/gallery/:id", handler.GetGalleryItem)
	return router
}

func TestGetConfig(t *testing.T) {
	router := setupSiteRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cfg site.SiteConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "Lumina Dental", cfg.Name)
	assert.Len(t, cfg.Gallery.Items, 5)
	assert.Len(t, cfg.Workflow.Steps, 3)
	assert.Len(t, cfg.Testimonials.Items, 3)
}

func TestGetGalleryFiltered(t *testing.T) {
	router := setupSiteRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gallery?category=COSMETIC", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Category string             `json:"category"`
		Items    []site.GalleryItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Porcelain Veneers", resp.Items[0].Title)
}

func TestGetGalleryDefaultsToAll(t *testing.T) {
	router := setupSiteRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []site.GalleryItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 5)
}

func TestGetGalleryUnknownCategoryIsEmpty(t *testing.T) {
	router := setupSiteRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gallery?category=NOPE", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []site.GalleryItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestGetGalleryItemByID(t *testing.T) {
	router := setupSiteRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gallery/2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var item site.GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 2, item.ID)
	assert.Equal(t, "Porcelain Veneers", item.Title)
}

func TestGetGalleryItemNotFound(t *testing.T) {
	router := setupSiteRouter()

	for _, path := range []string{"/api/gallery/999", "/api/gallery/abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), `"success":false`, path)
		assert.Contains(t, w.Body.String(), "Gallery item not found", path)
	}
}
