// Package config provides configuration for the chess-rules tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Workers is the number of games replayed concurrently (0 = NumCPU).
	Workers int

	// BufferSize is the capacity of the worker pool queues (0 = 2*Workers).
	BufferSize int

	// StopOnError stops reading further games after the first rejected move.
	StopOnError bool

	// SuppressDuplicates drops reports of games ending on a final position
	// already reported.
	SuppressDuplicates bool

	// Sub-configurations
	Output *OutputConfig
	Log    *LogConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     NewOutputConfig(),
		Log:        NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report destination.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size must not be negative, got %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
