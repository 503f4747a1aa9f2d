package server

import (
	"io"
	"time"

	"github.com/luminadental/lumina/internal/api/handlers"
	"github.com/luminadental/lumina/internal/api/middleware"
	"github.com/luminadental/lumina/internal/api/validation"
	"github.com/luminadental/lumina/internal/config"
	"github.com/luminadental/lumina/internal/server/routes"
	"github.com/luminadental/lumina/internal/service"
	"github.com/luminadental/lumina/internal/site"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const rateLimitMessage = "Too many contact requests from this IP, please try again later."

// Server represents the HTTP server
type Server struct {
	router      *gin.Engine
	config      *config.Config
	rateLimiter *middleware.RateLimiter
}

// NewServer creates a new server instance with all middleware and routes wired.
func NewServer(cfg *config.Config, contactService *service.ContactService, siteCfg *site.SiteConfig) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logger is replaced by the application logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Window:  time.Duration(cfg.RateLimitWindowMinutes) * time.Minute,
		Max:     cfg.RateLimitMax,
		Message: rateLimitMessage,
	})

	s := &Server{
		router:      router,
		config:      cfg,
		rateLimiter: rateLimiter,
	}

	// Global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.SecurityHeaders())
	if cfg.OTLPEndpoint != "" {
		router.Use(otelgin.Middleware("lumina-api"))
	}

	h := &routes.Handlers{
		Contact:     handlers.NewContactHandler(contactService, validation.New()),
		Health:      handlers.NewHealthHandler(),
		Credentials: handlers.NewCredentialsHandler(),
		Site:        handlers.NewSiteHandler(siteCfg),
	}
	m := &routes.Middleware{
		ContactRateLimit: rateLimiter,
	}

	routes.Setup(router, h, m)

	return s
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the configured port.
func (s *Server) Run() error {
	return s.router.Run(":" + s.config.Port)
}

// Close releases background resources.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}
