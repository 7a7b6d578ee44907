// Package logging provides component loggers for the kata CLI on top of
// charmbracelet/log.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "debug"}); err != nil {
//	    return err
//	}
//	logger := logging.Get("subarray")
//	logger.Debug("step", "index", 3, "running", 4)
//
// Library packages never log; only cmd/kata does.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ErrInvalidFormat is returned when an unknown log format is provided.
var ErrInvalidFormat = errors.New("invalid log format")

// ParseLevel parses a string into a charmbracelet/log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// ParseFormat parses text, json or logfmt.
func ParseFormat(s string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("%w: %s", ErrInvalidFormat, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string

	// Format is text (default), json or logfmt.
	Format string

	// Writer receives log output. Nil means stderr.
	Writer io.Writer

	// Timestamps adds a time field to every line.
	Timestamps bool
}

var (
	mu   sync.RWMutex
	root = log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
)

// Init replaces the root logger. Loggers obtained earlier from Get keep
// their previous settings.
func Init(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	formatter, err := ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.TimeOnly,
	})

	mu.Lock()
	root = l
	mu.Unlock()

	return nil
}

// Get returns a logger whose lines are prefixed with component.
func Get(component string) *log.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return root.WithPrefix(component)
}
