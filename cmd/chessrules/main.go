// chessrules plays and checks chess games by the standard rules, either
// interactively or over a batch of positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *batchFile != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runBatchFile(ctx, cfg, *batchFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	os.Exit(runInteractive(cfg, os.Stdin, os.Stderr))
}

// runInteractive plays a session over commands read from in and returns
// the exit code. The game archive is closed before it returns.
func runInteractive(cfg *config.Config, in io.Reader, errw io.Writer) int {
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(errw, "Error opening game archive: %v\n", err)
		return 1
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				fmt.Fprintf(errw, "Error closing game archive: %v\n", err)
			}
		}()
	}

	session, err := NewSession(cfg, store)
	if err != nil {
		fmt.Fprintf(errw, "Error: %v\n", err)
		return 2
	}
	if err := session.Run(in); err != nil {
		fmt.Fprintf(errw, "Error reading commands: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// openStore opens the game archive if one was requested. It returns nil
// without error when no archive is configured.
func openStore(cfg *config.Config) (*storage.GameStore, error) {
	if !cfg.Storage.Enabled() {
		return nil, nil
	}

	var logw io.Writer
	if cfg.Verbosity >= config.Commentary {
		logw = cfg.LogFile
	}
	store, err := storage.Open(*cfg.Storage, logw)
	if err != nil {
		return nil, err
	}
	cfg.Logf(config.Summary, "Game archive open")
	return store, nil
}

// runBatchFile analyses the positions in the named file, or stdin for "-".
func runBatchFile(ctx context.Context, cfg *config.Config, name string) error {
	if name == "-" {
		return runBatch(ctx, cfg, os.Stdin, "stdin")
	}

	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // read-only

	return runBatch(ctx, cfg, file, name)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a game read as commands from stdin, or analyses a batch of positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-16s %s\n", c.usage, c.help)
	}
}
