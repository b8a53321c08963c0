package telegram

import (
	"time"

	coreconfig "pricebench/core/config"
	"pricebench/core/telegram/middleware"
)

// DefaultMiddlewares returns the standard global chain: panic recovery,
// per-user rate limiting, update logging and counters. The returned
// Metrics can be wired to a periodic reporter.
func DefaultMiddlewares(cfg *coreconfig.Config) ([]Middleware, *middleware.Metrics) {
	metrics := middleware.NewMetrics()

	interval := time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}

	chain := []Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
		{Name: "rate_limit", Use: middleware.RateLimitMiddleware(interval)},
		{Name: "logger", Use: middleware.LoggingMiddleware},
		{Name: "metrics", Use: metrics.Middleware},
	}
	return chain, metrics
}
