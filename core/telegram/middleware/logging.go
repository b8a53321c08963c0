package middleware

import (
	"time"

	"log/slog"
	"pricebench/core/logger"

	tele "gopkg.in/telebot.v4"
)

// LoggingMiddleware logs every incoming update with timing and a request id.
func LoggingMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()
		rid := ridFor(c)

		err := next(c)

		attrs := []any{
			slog.String("event", "tg.update"),
			slog.String("rid", rid),
			slog.String("kind", updateKind(c)),
			slog.String("status", logger.Status(err)),
			slog.Duration("took", logger.RoundMS(time.Since(start))),
		}
		if s := c.Sender(); s != nil {
			attrs = append(attrs, slog.Int64("user_id", s.ID))
		}
		if msg := c.Message(); msg != nil && msg.Text != "" {
			attrs = append(attrs, slog.String("text", logger.Sanitize(msg.Text)))
		}
		if cb := c.Callback(); cb != nil {
			attrs = append(attrs, slog.String("callback", logger.Sanitize(cb.Data)))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("err", err))
			logger.TG.Error("update failed", attrs...)
		} else {
			logger.TG.Info("update handled", attrs...)
		}
		return err
	}
}

func ridFor(c tele.Context) string {
	var userID, chatID int64
	if s := c.Sender(); s != nil {
		userID = s.ID
	}
	if ch := c.Chat(); ch != nil {
		chatID = ch.ID
	}
	return logger.BuildRID(c.Update().ID, chatID, userID)
}

func updateKind(c tele.Context) string {
	switch {
	case c.Callback() != nil:
		return "callback"
	case c.Message() != nil && c.Message().Text != "" && c.Message().Text[0] == '/':
		return "command"
	case c.Message() != nil:
		return "message"
	default:
		return "other"
	}
}
