package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"sponsorly_backend/internal/app"
	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open store", "driver", cfg.Database.Driver, "error", err)
	}

	m := seed.NewMaintenance(store, os.Stdout)
	runErr := m.Run(ctx, os.Args[1:])

	if err := store.Close(context.Background()); err != nil {
		logger.Error("Failed to close store", "error", err)
	}

	if runErr != nil {
		if !errors.Is(runErr, seed.ErrUnknownCommand) {
			logger.Error("Command failed", "error", runErr)
		}
		os.Exit(1)
	}
}
