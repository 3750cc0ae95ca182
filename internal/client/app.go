package client

import (
	"context"
	"fmt"

	"github.com/staykeeper/staykeeper/internal/adapter"
	"github.com/staykeeper/staykeeper/internal/config"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/tui"
)

// App is the owner client application: local cache, server adapter, client
// services and the terminal UI wired into one process.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp builds the client from the merged configuration.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	localStore, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(localStore, serverAdapter, cfg.Adapter)

	ui, err := tui.New(services, logger)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run starts the terminal UI and blocks until the owner exits.
func (a *App) Run() error {
	return a.tui.Run(context.Background())
}
