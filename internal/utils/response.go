package utils

import (
	"net/http"

	"github.com/luminadental/lumina/internal/api/dto/common"
	"github.com/luminadental/lumina/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleData sends a 200 response with an arbitrary payload
func HandleData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// The client only ever sees the given message; err is logged server-side.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	if err != nil {
		logger := logging.GetLogger()
		logger.LogHTTPError(
			c.Request.Method,
			c.Request.URL.Path,
			GetRealIP(c),
			status,
			message,
			err,
		)
	}

	c.JSON(status, common.NewErrorResponse(message))
}
