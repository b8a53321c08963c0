package bootstrap

import (
	"fmt"

	coreconfig "pricebench/core/config"
	"pricebench/core/logger"
)

// App bundles the loaded configuration for the running process.
type App struct {
	Config *coreconfig.Config
}

// Init loads configuration and brings up the structured logger.
// It is the first thing every binary calls.
func Init(configPath string) (*App, error) {
	cfg, err := coreconfig.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: config: %w", err)
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, fmt.Errorf("bootstrap: logger: %w", err)
	}
	return &App{Config: cfg}, nil
}

// Close flushes logging outputs.
func (a *App) Close() error {
	return logger.Shutdown()
}
