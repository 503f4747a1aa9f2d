package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/luminadental/lumina/internal/api/dto/common"
	"github.com/luminadental/lumina/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery catches panics from handlers, logs the full error server-side
// and returns the generic 500 envelope. Error details never reach the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := logging.GetLogger()
				logger.Error("panic recovered: %v | %s %s | %s | request_id=%s\n%s",
					err,
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString("RequestID"),
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse("Internal server error"))
			}
		}()

		c.Next()
	}
}
