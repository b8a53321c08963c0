package router

import (
	"pricebench/core/telegram"

	tele "gopkg.in/telebot.v4"
)

// TextRoute funnels free-form text into the registry text fallback,
// which is normally bound to the active conversation flow.
func TextRoute(reg *telegram.Registry) telegram.Route {
	return telegram.Route{
		Endpoint: tele.OnText,
		Handler: func(c tele.Context) error {
			if h := reg.TextFallback(); h != nil {
				return h(c)
			}
			return nil
		},
	}
}
