// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile     = flag.String("o", "", "Output file (default: stdout)")
	appendOutput   = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput     = flag.Bool("J", false, "Write one JSON report per game")
	showBoard      = flag.Bool("board", false, "Append the final board diagram to each report")
	showMoves      = flag.Bool("moves", false, "List the committed moves in each report")
	showLegalMoves = flag.Bool("legal", false, "List the legal moves of the side to move")

	// Processing options
	workers     = flag.Int("workers", 0, "Number of games replayed concurrently (0 = auto-detect based on CPU cores)")
	bufferSize  = flag.Int("buffer", 0, "Worker queue capacity (0 = twice the worker count)")
	stopOnError = flag.Bool("stop", false, "Stop replaying after the first rejected move")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games ending on an already reported final position")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	logLevel  = flag.String("loglevel", "", "Log level: trace, debug, info, warn, error, disabled")
	prettyLog = flag.Bool("pretty", false, "Human readable log output")

	// Other options
	envFile  = flag.String("env", ".env", "Optional dotenv file with CHESS_RULES_* settings")
	playMode = flag.Bool("play", false, "Play a game interactively, reading moves from stdin")
	quiet    = flag.Bool("s", false, "Silent mode (no summary line)")
	help     = flag.Bool("h", false, "Show help")
	version  = flag.Bool("version", false, "Show version")
)

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies command-line flags to the configuration. Only flags in
// set override values already loaded from the environment.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyProcessingFlags(cfg, set)
	applyOutputFlags(cfg, set)
	applyLogFlags(cfg, set)
}

// applyProcessingFlags configures the worker pool.
func applyProcessingFlags(cfg *config.Config, set map[string]bool) {
	if set["workers"] {
		cfg.Workers = *workers
	}
	if set["buffer"] {
		cfg.BufferSize = *bufferSize
	}
	if set["stop"] {
		cfg.StopOnError = *stopOnError
	}
	if set["D"] {
		cfg.SuppressDuplicates = *suppressDuplicates
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["J"] {
		cfg.Output.Format = config.TextFormat
		if *jsonOutput {
			cfg.Output.Format = config.JSONFormat
		}
	}
	cfg.Output.ShowBoard = cfg.Output.ShowBoard || *showBoard
	cfg.Output.ShowMoves = cfg.Output.ShowMoves || *showMoves
	cfg.Output.ShowLegalMoves = cfg.Output.ShowLegalMoves || *showLegalMoves
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config, set map[string]bool) {
	if set["loglevel"] {
		cfg.Log.Level = *logLevel
	}
	if set["pretty"] {
		cfg.Log.Pretty = *prettyLog
	}
}
