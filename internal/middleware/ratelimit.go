package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"clainai/config"
	"clainai/pkg/response"
)

// rateLimiter keeps one token bucket per session; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	size := cfg.CacheSize
	if size <= 0 {
		size = 1000
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, cfg.TTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles per session, falling back to the client IP. Must run after Session.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := SessionID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !m.limiter.allow(key) {
			m.l.Warn(c.Request.Context(), "rate limit exceeded", "key", key, "path", c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
