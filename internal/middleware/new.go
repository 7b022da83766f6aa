package middleware

import "caretask/pkg/log"

// Config tunes the shared middleware. RateLimitPerMin <= 0 disables
// throttling.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin, clientTTL)
	}
	return m
}
