// flags.go - Command-line flag definitions
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "Config file (yaml, toml or json)")

	// Game options
	startFEN     = flag.String("fen", "", "Start position in FEN (default: configured or initial position)")
	moveFormat   = flag.String("format", "", "Move notation: uci, lan")
	maxHalfMoves = flag.Int("maxhalfmoves", 0, "Half-move clock limit (0 = configured)")

	// Performance options
	workers = flag.Int("workers", 0, "Number of perft workers (0 = configured)")

	// Shell options
	historyFile = flag.String("history", "", "Readline history file")

	// Other options
	debug   = flag.Bool("debug", false, "Enable debug logging")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Unset flags
// leave the loaded values alone.
func applyFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *moveFormat != "" {
		cfg.MoveFormat = *moveFormat
	}
	if *maxHalfMoves > 0 {
		cfg.MaxHalfMoves = *maxHalfMoves
	}
	if *workers > 0 {
		cfg.PerftWorkers = *workers
	}
	if *historyFile != "" {
		cfg.HistoryFile = *historyFile
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
}
