package logging

import (
	"log"
	"os"
)

// New returns a stderr logger with a consistent prefix to simplify traceability.
func New(component string) *log.Logger {
	prefix := component
	if prefix != "" {
		prefix = "[" + component + "] "
	}

	return log.New(os.Stderr, prefix, log.LstdFlags|log.Lmicroseconds)
}

// Stdout returns a logger that writes bare lines to standard output.
func Stdout() *log.Logger {
	return log.New(os.Stdout, "", 0)
}
