package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter holds one client's token bucket and last access time
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles requests per client. The key is the
// authenticated user when available, the client IP otherwise.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
	maxIdle time.Duration
	maxSize int
}

// NewRateLimiter allows perMinute requests per client with the given burst
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		maxIdle: 10 * time.Minute,
		maxSize: 10000,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, ok := rl.clients[key]
	if !ok {
		// Prune idle entries inline once the map gets large; no
		// background goroutine needed
		if len(rl.clients) >= rl.maxSize {
			for k, c := range rl.clients {
				if now.Sub(c.lastAccess) > rl.maxIdle {
					delete(rl.clients, k)
				}
			}
		}
		client = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = client
	}
	client.lastAccess = now
	return client.limiter.Allow()
}

// Middleware rejects over-limit requests with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, exists := c.Get("userID"); exists {
			if id, ok := userID.(string); ok && id != "" {
				key = id
			}
		}

		if !rl.allow(key) {
			c.JSON(http.StatusTooManyRequests, dto.Fail(dto.CodeRateLimited, "too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
