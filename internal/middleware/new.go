package middleware

import (
	"shareit/pkg/log"
	"shareit/pkg/response"
)

// UserIDHeader carries the id of the acting user on every sharing call.
const UserIDHeader = "X-Sharer-User-Id"

// Config tunes the middlewares.
type Config struct {
	// RateLimitPerMin is the sustained request budget per user (or per IP for
	// anonymous calls). Zero disables rate limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	reporter response.Reporter
	limiter  *rateLimiter
}

func New(l log.Logger, reporter response.Reporter, cfg Config) Middleware {
	mw := Middleware{
		l:        l,
		reporter: reporter,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
