package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"
	"pricebench/core/bootstrap"
	coreconfig "pricebench/core/config"
	"pricebench/core/logger"
	"pricebench/core/telegram"
)

// Setup builds the bot wiring for a loaded configuration. The returned
// cleanup runs after the bot stops and may be nil.
type Setup func(ctx context.Context, cfg *coreconfig.Config) (telegram.RunOptions, func(), error)

// Execute is the shared binary entrypoint: flags, bootstrap, signal
// handling and the polling loop. It exits the process on fatal errors.
func Execute(setup Setup) {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	app, err := bootstrap.Init(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, cleanup, err := setup(ctx, app.Config)
	if err != nil {
		logger.L.Error("wiring failed", slog.String("event", "boot.setup"), slog.Any("err", err))
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	start := time.Now()
	if err := telegram.RunTelegram(ctx, opts); err != nil {
		logger.L.Error("bot stopped with error",
			slog.String("event", "boot.run"),
			slog.Any("err", err),
			slog.Duration("uptime", logger.RoundMS(time.Since(start))),
		)
		os.Exit(1)
	}
	logger.L.Info("bot stopped",
		slog.String("event", "boot.run"),
		slog.Duration("uptime", logger.RoundMS(time.Since(start))),
	)
}
