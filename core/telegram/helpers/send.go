package helpers

import (
	"log/slog"
	"pricebench/core/logger"

	tele "gopkg.in/telebot.v4"
)

// SendText sends a plain text message, optionally with a reply markup.
func SendText(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

// SendMD sends a MarkdownV2 message. The text must already be escaped
// with format.EscapeMarkdown where user data is interpolated.
func SendMD(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdownV2}
	if markup != nil {
		opts.ReplyMarkup = markup
	}
	return c.Send(text, opts)
}

// EditMD edits the callback message in place with MarkdownV2 text.
func EditMD(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdownV2}
	if markup != nil {
		opts.ReplyMarkup = markup
	}
	return c.Edit(text, opts)
}

// EditOrSendMD tries to edit the originating message and falls back to a
// fresh send when editing is not possible (message too old or deleted).
func EditOrSendMD(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return SendMD(c, text, markup)
	}
	if err := EditMD(c, text, markup); err != nil {
		logger.TG.Debug("edit failed, sending instead",
			slog.String("event", "tg.edit.fallback"),
			slog.String("err", err.Error()),
		)
		return SendMD(c, text, markup)
	}
	return nil
}
