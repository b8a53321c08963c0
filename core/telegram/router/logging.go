package router

import (
	"log/slog"
	"pricebench/core/logger"
	"pricebench/core/telegram"
)

// LogRoutes emits a startup summary of registered commands and callbacks.
func LogRoutes(reg *telegram.Registry) {
	cmds := reg.ListCommands(false)
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Text)
	}
	summary, truncated := logger.SummarizeStrings(names, 16)
	logger.TG.Info("routes registered",
		slog.String("event", "tg.routes"),
		slog.Int("commands", len(cmds)),
		slog.Int("callbacks", len(reg.ListCallbacks())),
		slog.String("command_list", summary),
		slog.Bool("truncated", truncated),
	)
}
