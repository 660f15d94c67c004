package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/netutil"

	"github.com/shoresh319/debugapp/internal/handlers"
)

const (
	// MaxConns caps concurrently accepted connections.
	MaxConns = 1024

	shutdownTimeout = 5 * time.Second
)

// BindError reports that the listen address could not be acquired.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// New constructs an http.Server with sane timeouts and routes registered.
func New(startedAt time.Time) *http.Server {
	r := newRouter()
	registerRoutes(r, startedAt)

	return &http.Server{
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	return r
}

func registerRoutes(r chi.Router, startedAt time.Time) {
	r.Get("/", handlers.Status(startedAt))
}

// Listen binds a TCP listener on addr. Failures are returned as *BindError.
func Listen(addr string) (net.Listener, error) {
	return listen(addr, MaxConns)
}

func listen(addr string, maxConns int) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	return netutil.LimitListener(ln, maxConns), nil
}

// Port returns the TCP port ln is bound to, or 0 for non-TCP listeners.
func Port(ln net.Listener) int {
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Serve runs srv on ln until ctx is done, then shuts it down gracefully.
// It returns nil after a clean shutdown.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
