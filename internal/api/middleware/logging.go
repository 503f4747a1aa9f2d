package middleware

import (
	"time"

	"github.com/luminadental/lumina/internal/logging"
	"github.com/luminadental/lumina/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs request information through the application logger.
// Output is gated by the LOG_REQUESTS environment variable.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		logger := logging.GetLogger()
		logger.LogHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			latency.String(),
		)
	}
}
