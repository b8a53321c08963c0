package middleware

import (
	"log/slog"
	"pricebench/core/logger"

	tele "gopkg.in/telebot.v4"
)

// AdminOnly restricts a handler to the configured admin user.
// Other users get a short notice instead of the handler output.
func AdminOnly(adminID int64, next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		s := c.Sender()
		if s == nil || s.ID != adminID {
			var uid int64
			if s != nil {
				uid = s.ID
			}
			logger.TG.Warn("admin command denied",
				slog.String("event", "tg.access.denied"),
				slog.Int64("user_id", uid),
			)
			return c.Send("This command is not available.")
		}
		return next(c)
	}
}
