package middleware

import (
	"sync"
	"time"

	tele "gopkg.in/telebot.v4"
)

// RateLimitMiddleware drops updates from a user that arrive faster than the
// configured interval. Callback queries are still answered so the client
// spinner does not hang.
func RateLimitMiddleware(interval time.Duration) tele.MiddlewareFunc {
	var (
		mu   sync.Mutex
		last = make(map[int64]time.Time)
	)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			s := c.Sender()
			if s == nil {
				return next(c)
			}
			now := time.Now()
			mu.Lock()
			prev, seen := last[s.ID]
			if seen && now.Sub(prev) < interval {
				mu.Unlock()
				if c.Callback() != nil {
					return c.Respond()
				}
				return nil
			}
			last[s.ID] = now
			mu.Unlock()
			return next(c)
		}
	}
}
