package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/luminadental/lumina/internal/api/dto/common"
	"github.com/luminadental/lumina/internal/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig defines the per-client rate limit window
type RateLimitConfig struct {
	// Window is the fixed interval the limit applies to
	Window time.Duration
	// Max is the number of requests allowed per client within the window
	Max int
	// Message returned to rejected clients
	Message string
}

type clientWindow struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

// RateLimiter tracks one request counter per client IP. A client gets at
// most Max requests per window regardless of how the requests are spaced;
// the counter resets only when a full window has elapsed since the window
// opened. Entries are created lazily on first request and expired by a
// background janitor once a client has been idle for a full window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	config  RateLimitConfig
	done    chan struct{}
	now     func() time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup janitor.
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		config:  config,
		done:    make(chan struct{}),
		now:     time.Now,
	}

	go rl.janitor()

	return rl
}

// Stop terminates the cleanup janitor.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(rl.config.Window)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for ip, client := range rl.clients {
				if now.Sub(client.lastSeen) > rl.config.Window {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// allow records one request for the given IP and reports whether it is
// within the window limit, along with the remaining allowance.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	client, exists := rl.clients[ip]
	if !exists {
		client = &clientWindow{windowStart: now}
		rl.clients[ip] = client
	}
	client.lastSeen = now

	if now.Sub(client.windowStart) >= rl.config.Window {
		client.windowStart = now
		client.count = 0
	}

	if client.count >= rl.config.Max {
		return false, 0
	}
	client.count++

	return true, rl.config.Max - client.count
}

// Middleware rejects over-limit clients with 429 before the handler runs.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining := rl.allow(utils.GetRealIP(c))

		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				common.NewErrorResponse(rl.config.Message))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}
