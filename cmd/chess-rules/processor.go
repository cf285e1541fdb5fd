// processor.go - Game reading, replay and report output
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// run replays the games in files, or stdin when files is empty, and writes
// a report per game. It returns the process exit code.
func run(ctx context.Context, cfg *config.Config, files []string, stdin io.Reader) int {
	logger := cfg.Logger()

	games, parseErrors, err := collectGames(files, stdin, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	runner := &worker.Runner{
		Workers:     cfg.Workers,
		BufferSize:  cfg.BufferSize,
		StopOnError: cfg.StopOnError,
		Logger:      logger,
	}
	results := runner.Run(ctx, games)
	if cfg.SuppressDuplicates {
		results = dropDuplicates(results, logger)
	}

	summary, err := writeReports(cfg, results)
	if err != nil {
		logger.Error().Err(err).Msg("writing reports")
		return exitFailure
	}

	if !*quiet && cfg.Output.Format == config.TextFormat {
		output.NewTextWriter(cfg.OutputFile, cfg.Output).WriteSummary(summary) //nolint:errcheck,gosec // G104: summary is best effort
	}

	if summary.Rejected > 0 || parseErrors > 0 {
		return exitRejected
	}
	return exitOK
}

// collectGames reads every game from files, or from stdin when files is
// empty. Malformed games are logged and counted, then skipped.
func collectGames(files []string, stdin io.Reader, logger zerolog.Logger) ([]*parser.GameRecord, int, error) {
	if len(files) == 0 {
		return readGames(stdin, "stdin", logger)
	}

	var games []*parser.GameRecord
	parseErrors := 0
	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, 0, err
		}

		g, bad, err := readGames(file, filename, logger)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return nil, 0, err
		}
		games = append(games, g...)
		parseErrors += bad
	}
	return games, parseErrors, nil
}

// readGames parses r game by game, resuming after malformed lines. Only a
// read failure is returned as an error.
func readGames(r io.Reader, name string, logger zerolog.Logger) ([]*parser.GameRecord, int, error) {
	p := parser.NewParser(r, name)

	var games []*parser.GameRecord
	parseErrors := 0
	for {
		game, err := p.ParseGame()
		var parseErr *chesserrors.ParseError
		if errors.As(err, &parseErr) {
			parseErrors++
			logger.Warn().Err(err).Str("file", name).Msg("skipping malformed game")
			continue
		}
		if err != nil {
			return nil, parseErrors, err
		}
		if game == nil {
			break
		}
		games = append(games, game)
	}

	logger.Debug().Str("file", name).Int("games", len(games)).Int("errors", parseErrors).Msg("input read")
	return games, parseErrors, nil
}

// dropDuplicates removes results whose final position equals that of an
// earlier result. Results must be in input order.
func dropDuplicates(results []worker.ProcessResult, logger zerolog.Logger) []worker.ProcessResult {
	detector := hashing.NewDuplicateDetector(false)

	kept := results[:0]
	for _, result := range results {
		first, dup := detector.CheckAndAdd(result.Index, result.Board)
		if dup {
			logger.Info().
				Int("game", result.Index+1).
				Int("duplicate_of", first+1).
				Msg("suppressing duplicate final position")
			continue
		}
		kept = append(kept, result)
	}

	logger.Debug().Int("duplicates", detector.DuplicateCount()).Msg("duplicate detection finished")
	return kept
}

// writeReports writes one report per result in the configured format.
func writeReports(cfg *config.Config, results []worker.ProcessResult) (output.Summary, error) {
	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	for _, result := range results {
		if err := w.WriteResult(result); err != nil {
			return output.Summary{}, err
		}
	}
	if err := w.Close(); err != nil {
		return output.Summary{}, err
	}
	return output.Summarize(results), nil
}
