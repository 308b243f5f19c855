// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Start position as FEN (default: initial position)")

	// Storage options
	storeDir = flag.String("store", "", "Directory of the game archive")
	memStore = flag.Bool("memstore", false, "Keep the game archive in memory for this session")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the board diagram")
	showMoves  = flag.Bool("moves", false, "List legal moves with each report")

	// Batch options
	batchFile  = flag.String("batch", "", "Analyse the FEN positions in this file, one per line (- for stdin)")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	skipDups   = flag.Bool("D", false, "Report repeated positions in a batch as duplicates")
	dupCap     = flag.Int("dupcap", 0, "Maximum positions remembered for -D (0 = unlimited)")
	perftDepth = flag.Int("perft", 0, "Add a perft node count of this depth to each batch result")
	bufferSize = flag.Int("buffer", 0, "Batch channel buffer size (0 = twice the workers)")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 silent, 1 summary, 2 commentary")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyStorageFlags(cfg)
	applyOutputFlags(cfg)
	applyBatchFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
}

// applyStorageFlags configures the game archive.
func applyStorageFlags(cfg *config.Config) {
	cfg.Storage.Dir = *storeDir
	cfg.Storage.InMemory = *memStore
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowMoves = *showMoves
}

// applyBatchFlags configures batch analysis.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.Workers = *workers
	cfg.Batch.BufferSize = *bufferSize
	cfg.Batch.SkipDuplicates = *skipDups
	cfg.Batch.MaxPositions = *dupCap
	cfg.Batch.PerftDepth = *perftDepth
}
