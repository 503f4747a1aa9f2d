package routes

import (
	"github.com/luminadental/lumina/internal/api/handlers"
	"github.com/luminadental/lumina/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact     *handlers.ContactHandler
	Health      *handlers.HealthHandler
	Credentials *handlers.CredentialsHandler
	Site        *handlers.SiteHandler
}

// Middleware contains all the middleware shared across route groups
type Middleware struct {
	ContactRateLimit *middleware.RateLimiter
}
