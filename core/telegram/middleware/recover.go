package middleware

import (
	"runtime/debug"

	"log/slog"
	"pricebench/core/logger"

	tele "gopkg.in/telebot.v4"
)

// RecoverMiddleware keeps a panicking handler from taking the poller down.
// The user gets a generic failure message; the stack goes to the log.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				var uid int64
				if s := c.Sender(); s != nil {
					uid = s.ID
				}
				logger.TG.Error("handler panicked",
					slog.String("event", "tg.panic"),
					slog.Int64("user_id", uid),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
				err = c.Send("Something went wrong. Please try again.")
			}
		}()
		return next(c)
	}
}
