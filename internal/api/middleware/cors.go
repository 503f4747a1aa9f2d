package middleware

import (
	"time"

	"github.com/luminadental/lumina/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy. Development is permissive so the
// Vite dev server can talk to the API; production restricts callers to
// the configured clinic origins.
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour

	if cfg.Environment == "production" && len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
		corsConfig.AllowOriginFunc = func(origin string) bool {
			// Accept any origin while developing locally
			return true
		}
	}

	return cors.New(corsConfig)
}
