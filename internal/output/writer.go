package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// ReportWriter is the interface for writing replay results.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteResult writes the report for a single game.
	WriteResult(result worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewWriter returns the writer for cfg.Format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	if cfg != nil && cfg.Format == config.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one block of text per game.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
	err error
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes a text report for result.
func (tw *TextWriter) WriteResult(result worker.ProcessResult) error {
	r := NewReport(result, tw.cfg)

	if r.File != "" {
		tw.printf("game %d (%s:%d)\n", r.Game, r.File, r.Line)
	} else {
		tw.printf("game %d\n", r.Game)
	}
	if r.Setup != "" {
		tw.printf("  setup:     %s\n", r.Setup)
	}
	if r.Outcome != "" {
		tw.printf("  plies:     %d\n", r.Plies)
		tw.printf("  to move:   %s\n", r.ToMove)
		tw.printf("  outcome:   %s\n", r.Outcome)
		draws := "none"
		if names := r.Draws.Names(); len(names) > 0 {
			draws = strings.Join(names, ", ")
		}
		tw.printf("  draws:     %s\n", draws)
		tw.printf("  placement: %s\n", r.Placement)
	}
	if r.Error != "" {
		tw.printf("  rejected:  %s\n", r.Error)
	}
	if len(r.Moves) > 0 {
		tw.writeList("moves", r.Moves)
	}
	if len(r.LegalMoves) > 0 {
		tw.writeList("legal", r.LegalMoves)
	}
	if r.Board != "" {
		for _, line := range strings.Split(r.Board, "\n") {
			tw.printf("    %s\n", line)
		}
	}
	tw.printf("\n")

	err := tw.err
	tw.err = nil
	return err
}

func (tw *TextWriter) writeList(label string, items []string) {
	tw.printf("  %s:\n", label)
	lw := NewLineWriter(tw.w, 80, "    ")
	for _, item := range items {
		lw.Write(item)
	}
	lw.NewLine()
	if tw.err == nil {
		tw.err = lw.Err()
	}
}

func (tw *TextWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// WriteSummary writes the batch totals.
func (tw *TextWriter) WriteSummary(s Summary) error {
	_, err := fmt.Fprintf(tw.w, "%d games, %d rejected, %d checkmates, %d stalemates, %d drawn\n",
		s.Games, s.Rejected, s.Checkmates, s.Stalemates, s.Draws)
	return err
}

// Flush is a no-op; text reports are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format. By default each report is
// written immediately as one line; in batch mode reports are buffered and
// written as a single document on Flush or Close.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	reports []*Report
	batch   bool
}

// NewJSONWriter creates a JSON writer emitting one object per line.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterBatch creates a JSON writer that collects reports into one document.
func NewJSONWriterBatch(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, batch: true}
}

// BatchOutput is the document written by a batch JSONWriter.
type BatchOutput struct {
	Games   []*Report `json:"games"`
	Summary *Summary  `json:"summary,omitempty"`
}

// WriteResult writes or buffers the report for result.
func (jw *JSONWriter) WriteResult(result worker.ProcessResult) error {
	r := NewReport(result, jw.cfg)
	if jw.batch {
		jw.reports = append(jw.reports, r)
		return nil
	}
	return json.NewEncoder(jw.w).Encode(r)
}

// Flush writes all buffered reports as one JSON document.
func (jw *JSONWriter) Flush() error {
	if !jw.batch || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&BatchOutput{Games: jw.reports})

	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
