package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled
	Level string

	// Pretty switches from JSON lines to the human readable console writer
	Pretty bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn"}
}

// Validate checks that Level names a zerolog level.
func (c *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Level, errors.ErrInvalidConfig)
	}
	return nil
}

// NewLogger builds the logger described by c, writing to w.
func (c *LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}

	if c.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Logger builds the logger for the configured level and log stream.
func (c *Config) Logger() zerolog.Logger {
	return c.Log.NewLogger(c.LogFile)
}
