package middleware

import (
	"sync"
	"sync/atomic"
	"time"

	"log/slog"
	"pricebench/core/logger"

	tele "gopkg.in/telebot.v4"
)

// Metrics accumulates per-process update counters and reports them
// periodically through the structured log.
type Metrics struct {
	updates  atomic.Int64
	failures atomic.Int64

	mu    sync.Mutex
	users map[int64]struct{}
}

func NewMetrics() *Metrics {
	return &Metrics{users: make(map[int64]struct{})}
}

// Middleware counts handled updates, failures and distinct users.
func (m *Metrics) Middleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		m.updates.Add(1)
		if s := c.Sender(); s != nil {
			m.mu.Lock()
			m.users[s.ID] = struct{}{}
			m.mu.Unlock()
		}
		err := next(c)
		if err != nil {
			m.failures.Add(1)
		}
		return err
	}
}

// Report logs a metrics snapshot every interval until stop is closed.
func (m *Metrics) Report(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			m.mu.Lock()
			users := len(m.users)
			m.mu.Unlock()
			logger.TG.Info("metrics snapshot",
				slog.String("event", "tg.metrics"),
				slog.Int64("updates", m.updates.Load()),
				slog.Int64("failures", m.failures.Load()),
				slog.Int("users", users),
			)
		}
	}
}
