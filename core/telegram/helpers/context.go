package helpers

import (
	"context"

	"pricebench/core/logger"

	tele "gopkg.in/telebot.v4"
)

// BuildContext derives a context.Context for a Telegram update carrying
// the request id and sender metadata used by the structured log.
func BuildContext(parent context.Context, c tele.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	var userID, chatID int64
	if s := c.Sender(); s != nil {
		userID = s.ID
	}
	if ch := c.Chat(); ch != nil {
		chatID = ch.ID
	}
	rid := logger.BuildRID(c.Update().ID, chatID, userID)
	ctx := logger.WithRID(parent, rid)
	return logger.WithUpdateMeta(ctx, c.Update().ID, userID, chatID)
}

// SenderID returns the sender id or zero for updates without one.
func SenderID(c tele.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}
