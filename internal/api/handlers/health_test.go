package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luminadental/lumina/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/health", NewHealthHandler().Check)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var health common.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "OK", health.Status)
	assert.NotEmpty(t, health.Timestamp)
	assert.GreaterOrEqual(t, health.Uptime, 0.0)
	assert.NotEmpty(t, health.Version)
}

func TestCredentialsPlaceholder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/credentials", NewCredentialsHandler().Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp common.CredentialsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.NotEmpty(t, resp.Message)
}
