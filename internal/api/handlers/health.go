package handlers

import (
	"net/http"
	"time"

	"github.com/luminadental/lumina/internal/api/dto/common"
	"github.com/luminadental/lumina/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startTime time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startTime: time.Now()}
}

// Check reports process liveness.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Seconds(),
		Version:   version.Version,
	})
}
