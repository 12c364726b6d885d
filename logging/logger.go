// Package logging builds the logrus loggers used by the automaton and the CLI.
//
// Two formats are supported: "text" (logrus.TextFormatter with full
// timestamps) and "json" (logrus.JSONFormatter, RFC3339 timestamps).
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Format selects the logrus formatter.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for formats other than text and json.
var ErrUnsupportedFormat = errors.New("logging: unsupported format")

// Config holds the logger settings.
type Config struct {
	Level  string    // debug, info, warn, error
	Format Format    // text or json
	Output io.Writer // defaults to os.Stderr
}

// Validate checks Level and Format without building a logger.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.levelOrDefault()); err != nil {
		return fmt.Errorf("logging: invalid level %q: %w", c.Level, err)
	}
	switch c.formatOrDefault() {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.Format)
	}
}

// New creates a configured *logrus.Logger.
func New(cfg Config) (*logrus.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := logrus.ParseLevel(cfg.levelOrDefault())

	l := logrus.New()
	l.SetLevel(level)
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	switch cfg.formatOrDefault() {
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	return l, nil
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

func (c Config) levelOrDefault() string {
	if c.Level == "" {
		return logrus.InfoLevel.String()
	}
	return c.Level
}

func (c Config) formatOrDefault() Format {
	if c.Format == "" {
		return FormatText
	}
	return c.Format
}
