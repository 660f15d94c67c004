package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/shoresh319/debugapp/internal/app"
	"github.com/shoresh319/debugapp/internal/config"
	"github.com/shoresh319/debugapp/internal/logging"
)

func main() {
	logger := logging.New("debugapp")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(app.Config{
		Addr:   cfg.Addr(),
		Logger: logging.Stdout(),
	})

	if err := application.Run(ctx); err != nil {
		stop()
		logger.Fatalf("debug server failed: %v", err)
	}
}
