package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Environment variables read by LoadEnv.
const (
	EnvWorkers   = "CHESS_RULES_WORKERS"
	EnvBuffer    = "CHESS_RULES_BUFFER"
	EnvLogLevel  = "CHESS_RULES_LOG_LEVEL"
	EnvPrettyLog = "CHESS_RULES_PRETTY_LOG"
	EnvFormat    = "CHESS_RULES_FORMAT"
)

// LoadEnv loads an optional dotenv file and applies the CHESS_RULES_*
// variables to c. Variables already set in the process environment win over
// the file. A missing file is not an error; an empty path skips the file.
func (c *Config) LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrInvalidConfig, "loading %s: %v", path, err)
		}
	}
	return c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv applies the CHESS_RULES_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvBuffer); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvBuffer, v, errors.ErrInvalidConfig)
		}
		c.BufferSize = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvPrettyLog); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPrettyLog, v, errors.ErrInvalidConfig)
		}
		c.Log.Pretty = b
	}
	if v, ok := lookup(EnvFormat); ok {
		format, err := ParseOutputFormat(v)
		if err != nil {
			return err
		}
		c.Output.Format = format
	}
	return nil
}
