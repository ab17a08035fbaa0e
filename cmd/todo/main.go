package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/waypoint/app/todo"
	"github.com/dmitrymomot/waypoint/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := todo.LoadConfig()
	if err != nil {
		logger.New().Error("Failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(logger.Component(cfg.AppName)),
	)
	if cfg.AuthPasswordHash == "" {
		log.Warn("AUTH_PASSWORD_HASH is not set, /login issues tokens to any caller")
	}

	app, err := todo.NewApp(ctx, cfg, todo.WithLogger(log))
	if err != nil {
		log.Error("Failed to initialize app", logger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("Server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
