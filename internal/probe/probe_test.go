package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shoresh319/debugapp/internal/handlers"
)

func newProbe(url string) *Probe {
	return New(Config{
		BaseURL:      url,
		RetryMax:     2,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	})
}

func TestCheckHealthy(t *testing.T) {
	startedAt := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	ts := httptest.NewServer(handlers.Status(startedAt))
	defer ts.Close()

	payload, err := newProbe(ts.URL).Check(context.Background())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if payload.StartedAt != "2026-10-17T09:30:00.000Z" {
		t.Errorf("unexpected startedAt %q", payload.StartedAt)
	}
	if payload.Message != handlers.Message {
		t.Errorf("unexpected message %q", payload.Message)
	}
}

func TestCheckRetriesUnavailable(t *testing.T) {
	status := handlers.Status(time.Now())
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		status(w, r)
	}))
	defer ts.Close()

	if _, err := newProbe(ts.URL).Check(context.Background()); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}

func TestCheckFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}},
		{"unhealthy status", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"degraded","message":"x","startedAt":"2026-10-17T09:30:00.000Z"}`))
		}},
		{"bad timestamp", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ok","message":"x","startedAt":"yesterday"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			if _, err := newProbe(ts.URL).Check(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCheckConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	if _, err := newProbe(url).Check(context.Background()); err == nil {
		t.Fatal("expected error for closed server")
	}
}
