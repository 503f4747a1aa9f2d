package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newRateLimitedRouter(t *testing.T, config RateLimitConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(config)
	t.Cleanup(rl.Stop)

	router := gin.New()
	router.POST("/submit", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("X-Real-IP", ip)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	router := newRateLimitedRouter(t, RateLimitConfig{
		Window:  15 * time.Minute,
		Max:     5,
		Message: "Too many contact requests from this IP, please try again later.",
	})

	for i := 1; i <= 5; i++ {
		w := doRequest(router, "203.0.113.7")
		if w.Code != http.StatusOK {
			t.Fatalf("request %d got status %d; want 200", i, w.Code)
		}
	}

	w := doRequest(router, "203.0.113.7")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("6th request got status %d; want 429", w.Code)
	}
	if body := w.Body.String(); body == "" || !containsAll(body, `"success":false`, "Too many contact requests") {
		t.Errorf("6th request body = %s; want rejection envelope", body)
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	router := newRateLimitedRouter(t, RateLimitConfig{
		Window:  15 * time.Minute,
		Max:     1,
		Message: "too many",
	})

	if w := doRequest(router, "198.51.100.1"); w.Code != http.StatusOK {
		t.Fatalf("first client got %d; want 200", w.Code)
	}
	if w := doRequest(router, "198.51.100.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client second request got %d; want 429", w.Code)
	}
	// A different IP has its own window.
	if w := doRequest(router, "198.51.100.2"); w.Code != http.StatusOK {
		t.Fatalf("second client got %d; want 200", w.Code)
	}
}

func TestRateLimiterSetsHeaders(t *testing.T) {
	router := newRateLimitedRouter(t, RateLimitConfig{
		Window:  15 * time.Minute,
		Max:     5,
		Message: "too many",
	})

	w := doRequest(router, "203.0.113.9")
	if got := w.Header().Get("X-RateLimit-Limit"); got != "5" {
		t.Errorf("X-RateLimit-Limit = %q; want 5", got)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got == "" {
		t.Error("X-RateLimit-Remaining header missing")
	}
}

// newClockedRouter wires a router to a limiter driven by a manual clock,
// so request spacing inside the window can be controlled exactly. The
// janitor is not started; the clock is stepped from the test goroutine.
func newClockedRouter(t *testing.T, config RateLimitConfig) (*gin.Engine, *time.Time) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	current := time.Now()
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		config:  config,
		done:    make(chan struct{}),
	}
	rl.now = func() time.Time { return current }

	router := gin.New()
	router.POST("/submit", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, &current
}

func TestRateLimiterLimitsSpacedRequestsWithinWindow(t *testing.T) {
	router, clock := newClockedRouter(t, RateLimitConfig{
		Window:  time.Second,
		Max:     2,
		Message: "too many",
	})

	// Spread requests across the window; the allowance must not replenish
	// until a full window has elapsed.
	if w := doRequest(router, "203.0.113.20"); w.Code != http.StatusOK {
		t.Fatalf("request 1 got status %d; want 200", w.Code)
	}
	*clock = clock.Add(150 * time.Millisecond)
	if w := doRequest(router, "203.0.113.20"); w.Code != http.StatusOK {
		t.Fatalf("request 2 got status %d; want 200", w.Code)
	}
	*clock = clock.Add(150 * time.Millisecond)
	if w := doRequest(router, "203.0.113.20"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("request 3 got status %d; want 429", w.Code)
	}
	*clock = clock.Add(600 * time.Millisecond)
	if w := doRequest(router, "203.0.113.20"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("request 4 at 900ms got status %d; want 429", w.Code)
	}
}

func TestRateLimiterResetsAfterWindowElapses(t *testing.T) {
	router, clock := newClockedRouter(t, RateLimitConfig{
		Window:  time.Second,
		Max:     1,
		Message: "too many",
	})

	if w := doRequest(router, "203.0.113.21"); w.Code != http.StatusOK {
		t.Fatalf("first request got status %d; want 200", w.Code)
	}
	*clock = clock.Add(500 * time.Millisecond)
	if w := doRequest(router, "203.0.113.21"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("mid-window request got status %d; want 429", w.Code)
	}

	*clock = clock.Add(time.Second)
	w := doRequest(router, "203.0.113.21")
	if w.Code != http.StatusOK {
		t.Fatalf("post-window request got status %d; want 200", w.Code)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining after reset = %q; want 0", got)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
