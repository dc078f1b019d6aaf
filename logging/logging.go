package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the process logger once. Every line carries the service
// name; with an empty filePath logs go to stdout only.
func Init(service, filePath string) *slog.Logger {
	once.Do(func() {
		var w io.Writer = os.Stdout
		if filePath != "" {
			w = io.MultiWriter(os.Stdout, rotatingFile(filePath, os.Stderr))
		}
		base = newLogger(w, service)
	})
	return base
}

// Base returns the process logger, initialising a stdout one if Init was never
// called.
func Base() *slog.Logger {
	return Init("app", "")
}

// New returns a child of the process logger tagged with component.
func New(component string) *slog.Logger {
	return child(Base(), component)
}

// Discard is a logger for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLogger(w io.Writer, service string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("service", service)
}

func child(parent *slog.Logger, component string) *slog.Logger {
	return parent.With("component", component)
}

func rotatingFile(path string, errw io.Writer) io.Writer {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(errw, "logging: create log dir for %s: %v\n", path, err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
}
