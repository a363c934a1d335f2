// Package config holds the runtime configuration of the monads CLI.
package config

import (
	"os"
	"strings"

	"justisgipson/monads/fperr"

	"github.com/sirupsen/logrus"
)

const (
	EnvLogLevel  = "MONADS_LOG_LEVEL"
	EnvLogFormat = "MONADS_LOG_FORMAT"

	FormatText = "text"
	FormatJSON = "json"
)

// Config holds configuration for the CLI.
type Config struct {
	// LogLevel is a logrus level name.
	// Defaults to MONADS_LOG_LEVEL, then "warn"
	LogLevel string

	// LogFormat selects the logrus formatter, "text" or "json".
	// Defaults to MONADS_LOG_FORMAT, then "text"
	LogFormat string
}

// DefaultConfig returns the configuration taken from the environment.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  envOr(EnvLogLevel, logrus.WarnLevel.String()),
		LogFormat: envOr(EnvLogFormat, FormatText),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Validate checks that every field holds a known value.
func (c *Config) Validate() error {
	errs := &fperr.MultiError{}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs.Append(fperr.NewConfigError("log-level", c.LogLevel, "unknown log level"))
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		errs.Append(fperr.NewConfigError("log-format", c.LogFormat, "must be text or json"))
	}
	return errs.ErrOrNil()
}

// NewLogger builds a logger from the configuration. Validate must have passed.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if c.LogFormat == FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
