package router

import (
	"log/slog"
	"pricebench/core/logger"
	"pricebench/core/telegram"
	"pricebench/core/telegram/callbacks"

	tele "gopkg.in/telebot.v4"
)

// CallbackRoute dispatches inline keyboard callbacks through the registry.
// Data is parsed as "<key>|<payload>"; unknown keys go to the registry
// fallback handler.
func CallbackRoute(reg *telegram.Registry) telegram.Route {
	return telegram.Route{
		Endpoint: tele.OnCallback,
		Handler: func(c tele.Context) error {
			cb := c.Callback()
			if cb == nil {
				return nil
			}
			key, _ := callbacks.Split(cb.Data)
			h, ok := reg.GetCallback(key)
			if !ok {
				logger.TG.Warn("callback not registered",
					slog.String("event", "tg.callback.unknown"),
					slog.String("key", key),
				)
				return reg.CallbackNotFound()(c)
			}
			return h(c)
		},
	}
}
