package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sevigo/coderadar/internal/version"
	"github.com/sevigo/coderadar/internal/wire"
)

func main() {
	if err := run(); err != nil {
		slog.Error("coderadar server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	base := fmt.Sprintf("http://localhost:%d", app.Cfg.Server.Port)
	app.Logger.Info("CodeRadar backend is ready",
		"version", version.Version,
		"environment", app.Cfg.Environment,
		"model", app.Reviewer.ModelName(),
		"url", base,
		"review", base+"/ai/get-review",
		"ai_health", base+"/ai/health")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Start()
	}()

	select {
	case <-ctx.Done():
		app.Logger.Info("received shutdown signal")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	if err := app.Stop(); err != nil {
		return errors.Join(errors.New("failed to stop application"), err)
	}
	return nil
}
