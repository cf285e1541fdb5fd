package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how game reports are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // one block of text per game
	JSONFormat                     // one JSON object per line
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts "text" or "json" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format specifies text or JSON reports
	Format OutputFormat

	// ShowBoard appends the final board diagram to text reports
	ShowBoard bool

	// ShowMoves lists the committed moves in each report
	ShowMoves bool

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: TextFormat,
	}
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	if c.Format != TextFormat && c.Format != JSONFormat {
		return fmt.Errorf("output format %d: %w", c.Format, errors.ErrInvalidConfig)
	}
	return nil
}
