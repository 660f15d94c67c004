package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shoresh319/debugapp/internal/server"
)

// Config encapsulates runtime configuration for the application.
type Config struct {
	Addr   string
	Logger *log.Logger
}

// App ties the startup timestamp to the status server.
type App struct {
	cfg       Config
	startedAt time.Time
}

// New constructs a new App and captures the startup timestamp.
func New(cfg Config) *App {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return &App{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// StartedAt returns the timestamp captured when the App was constructed.
func (a *App) StartedAt() time.Time {
	return a.startedAt
}

// Run binds the listener, announces the port and serves until ctx is done.
// A bind failure is returned as *server.BindError.
func (a *App) Run(ctx context.Context) error {
	ln, err := server.Listen(a.cfg.Addr)
	if err != nil {
		return err
	}

	a.cfg.Logger.Printf("Debug server listening on port %d", server.Port(ln))

	if err := server.Serve(ctx, server.New(a.startedAt), ln); err != nil {
		return fmt.Errorf("run status server: %w", err)
	}
	return nil
}
