package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = 80

// Config holds the runtime configuration read from the environment.
type Config struct {
	Port int
}

func Default() Config {
	return Config{
		Port: DefaultPort,
	}
}

// Load reads PORT from the environment on top of Default.
func Load() (*Config, error) {
	cfg := Default()

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := parsePort(raw)
		if err != nil {
			return nil, err
		}
		cfg.Port = port
	}

	return &cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse PORT %q: %w", raw, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("PORT %d out of range 0-65535", port)
	}
	return port, nil
}
