// Package logging builds the logrus logger used by the calculator. Output
// goes to stderr by default so that stdout stays reserved for the REPL.
package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"calckit/cli/calc/internal/config"
)

// New returns a logger configured from cfg writing to w (stderr when nil).
// An unknown level falls back to config.DefaultLogLevel with a warning.
func New(cfg config.LogConfig, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.New()
	logger.SetOutput(w)
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	fallback, _ := log.ParseLevel(config.DefaultLogLevel)
	logger.SetLevel(fallback)
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("invalid log level %s, defaulting to %s", cfg.Level, config.DefaultLogLevel)
	}
	return logger
}
