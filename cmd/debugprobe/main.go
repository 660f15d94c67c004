// Command debugprobe checks the local debug server and exits non-zero when it
// is not healthy. It is meant to be used as a container HEALTHCHECK.
package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shoresh319/debugapp/internal/config"
	"github.com/shoresh319/debugapp/internal/logging"
	"github.com/shoresh319/debugapp/internal/probe"
)

func main() {
	logger := logging.New("debugprobe")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := probe.New(probe.Config{
		BaseURL:      "http://127.0.0.1:" + strconv.Itoa(cfg.Port),
		RetryMax:     3,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: time.Second,
		Logger:       logger,
	})

	payload, err := p.Check(ctx)
	if err != nil {
		cancel()
		logger.Fatalf("probe failed: %v", err)
	}

	fmt.Printf("healthy, started at %s\n", payload.StartedAt)
}
