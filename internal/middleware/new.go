package middleware

import (
	"clainai/config"
	"clainai/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain router.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	secure  bool
}

// New builds the middleware set. Rate limiting is skipped when disabled in config.
func New(l log.Logger, cfg config.RateLimitConfig, environment string) Middleware {
	mw := Middleware{
		l:      l,
		secure: environment == "production",
	}
	if cfg.Enabled && cfg.RequestsPerMinute > 0 {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
