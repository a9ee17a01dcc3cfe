package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// Fixed-window admission: 10 requests per 60s window per client key.
	// Bursts straddling a window boundary may admit up to twice the limit;
	// that is a documented property of fixed windows, not a bug.
	RateLimitWindow   = time.Minute
	RateLimitRequests = 10

	fallbackClientKey = "unknown"
)

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a process-wide fixed-window counter keyed by client address.
// Counters are created lazily and reset in place when their window elapses.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

func NewRateLimiter(limit int, windowLen time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  windowLen,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Allow reports whether a request under the given key is admitted. A denied
// request does not advance the counter.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.window)}
		return true
	}

	if w.count >= rl.limit {
		return false
	}

	w.count++
	return true
}

// RateLimit rejects over-limit requests with 429 before any other processing.
// The client key is spoofable (forwarded header); it must not be treated as a
// strong identity.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(clientKey(c.Request)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

// clientKey derives the limiter key from the first forwarded address, falling
// back to a fixed token when the header is absent.
func clientKey(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return fallbackClientKey
	}
	first, _, _ := strings.Cut(forwarded, ",")
	return strings.TrimSpace(first)
}
