package handlers

import (
	"net/http"

	"github.com/luminadental/lumina/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

type CredentialsHandler struct{}

func NewCredentialsHandler() *CredentialsHandler {
	return &CredentialsHandler{}
}

// Get is a placeholder until the clinic's credential documents are served here.
func (h *CredentialsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, common.CredentialsResponse{
		Message:   "PDF credentials endpoint - Coming soon",
		Available: false,
	})
}
