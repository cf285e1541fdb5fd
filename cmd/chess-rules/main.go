// chess-rules replays games of coordinate moves through the rules engine and
// reports the outcome of each.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK       = 0
	exitRejected = 1 // at least one game had a rejected move or parse error
	exitFailure  = 2 // configuration or I/O failure
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg, err := loadConfig(*envFile, explicitFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var code int
	if *playMode {
		code = runPlay(ctx, cfg, os.Stdin)
	} else {
		code = run(ctx, cfg, flag.Args(), os.Stdin)
	}

	closeIfCloser(cfg.OutputFile)
	closeIfCloser(cfg.LogFile)
	os.Exit(code)
}

// loadConfig builds the configuration from defaults, the environment and
// then the command line, in increasing precedence.
func loadConfig(envPath string, set map[string]bool) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := cfg.LoadEnv(envPath); err != nil {
		return nil, err
	}
	applyFlags(cfg, set)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(exitFailure)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitFailure)
	}
	cfg.SetOutput(file)
}

func closeIfCloser(w io.Writer) {
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [game-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games written as coordinate moves and reports\n")
	fmt.Fprintf(os.Stderr, "check, checkmate, stalemate and draw conditions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nGame files hold one game per line:\n")
	fmt.Fprintf(os.Stderr, "  e2e4 e7e5 g1f3          moves from the standard start\n")
	fmt.Fprintf(os.Stderr, "  [4k3/8/8/8/8/8/8/R3K3] e1d1   moves from a FEN piece placement\n")
	fmt.Fprintf(os.Stderr, "  # comment               ignored to the end of the line\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment: %s, %s, %s, %s, %s\n",
		config.EnvWorkers, config.EnvBuffer, config.EnvLogLevel, config.EnvPrettyLog, config.EnvFormat)
}
