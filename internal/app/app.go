package app

import (
	"context"
	"fmt"
	"time"

	coreconfig "pricebench/core/config"
	"pricebench/core/database"
	"pricebench/core/telegram"
	"pricebench/core/telegram/router"
	"pricebench/internal/flows"
	"pricebench/internal/pgstore"
	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/sheetstore"
)

// Setup wires the record store, the flow controller and the Telegram
// registry into run options for the polling loop.
func Setup(ctx context.Context, cfg *coreconfig.Config) (telegram.RunOptions, func(), error) {
	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return telegram.RunOptions{}, nil, err
	}

	sessions := session.NewStore()
	ctrl := flows.NewController(store, sessions, cfg.Catalog.Products, cfg.Catalog.Locations)

	reg := telegram.NewRegistry()
	registerCommands(reg, ctrl)
	registerCallbacks(reg, ctrl)
	reg.SetTextFallback(textHandler(ctrl))

	middlewares, metrics := telegram.DefaultMiddlewares(cfg)
	stopMetrics := make(chan struct{})
	go metrics.Report(10*time.Minute, stopMetrics)

	routes := router.CommandRoutes(reg, cfg.Telegram.AdminID)
	routes = append(routes, router.CallbackRoute(reg), router.TextRoute(reg))

	opts := telegram.RunOptions{
		Config:      cfg,
		Registry:    reg,
		Middlewares: middlewares,
		Routes:      routes,
		OnStart: func(ctx context.Context, rt telegram.Runtime) error {
			router.LogRoutes(rt.Registry)
			return nil
		},
	}

	cleanup := func() {
		close(stopMetrics)
		if closeStore != nil {
			closeStore()
		}
	}
	return opts, cleanup, nil
}

// buildStore constructs the configured record store backend.
func buildStore(ctx context.Context, cfg *coreconfig.Config) (records.Store, func(), error) {
	switch cfg.Store.Backend {
	case coreconfig.BackendPostgres:
		dbCfg := database.FromStoreConfig(cfg.Store.Postgres)
		if err := database.RunMigrations(dbCfg); err != nil {
			return nil, nil, fmt.Errorf("app: migrations: %w", err)
		}
		db, err := database.Connect(dbCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("app: postgres: %w", err)
		}
		return pgstore.New(db), func() { _ = db.Close() }, nil
	default:
		st, err := sheetstore.New(ctx, cfg.Store.Sheets)
		if err != nil {
			return nil, nil, fmt.Errorf("app: sheets: %w", err)
		}
		return st, func() {}, nil
	}
}
