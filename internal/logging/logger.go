// Package logging wraps charmbracelet/log for the grading pipeline: a
// package-level default logger, level parsing shared with the config layer,
// and context plumbing so HTTP handlers, checkers, and collaborators log
// through the same instance.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cppgrader/pkg/config"
)

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// parseLevel maps a level name to a charmbracelet/log level. Unrecognized
// names fall back to info so a bad config value never silences the logger.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger writing to stderr at the given level.
// Valid levels: "debug", "info", "warn", "error".
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// NewFromConfig creates a logger at the level named by the resolved
// configuration.
func NewFromConfig(cfg *config.Config) *log.Logger {
	if cfg == nil {
		return New("info")
	}
	return New(cfg.LogLevel)
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	getDefaultLogger().SetLevel(parseLevel(level))
}
