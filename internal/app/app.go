// Package app ties the configured components of the CodeRadar service together
// and controls their lifecycle.
package app

import (
	"log/slog"

	"github.com/sevigo/coderadar/internal/config"
	"github.com/sevigo/coderadar/internal/core"
	"github.com/sevigo/coderadar/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Reviewer core.Reviewer
	server   *server.Server
}

// NewApp assembles an App from already constructed components.
func NewApp(cfg *config.Config, srv *server.Server, reviewer core.Reviewer, logger *slog.Logger) *App {
	return &App{
		Cfg:      cfg,
		Logger:   logger,
		Reviewer: reviewer,
		server:   srv,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	a.Logger.Info("starting CodeRadar",
		"port", a.Cfg.Server.Port,
		"environment", a.Cfg.Environment,
		"model", a.Reviewer.ModelName())

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.Logger.Info("shutting down CodeRadar services")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("CodeRadar stopped with errors", "error", err)
		return err
	}

	a.Logger.Info("CodeRadar stopped successfully")
	return nil
}
