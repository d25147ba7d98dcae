// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// defaultDBDir asks for the platform data directory.
const defaultDBDir = "default"

var (
	// Display options
	flipBoard   = flag.Bool("flip", false, "Draw the board from Black's side")
	asciiPieces = flag.Bool("ascii", false, "Draw pieces as letters instead of chess symbols")
	noCoords    = flag.Bool("nocoords", false, "Don't print file and rank labels")
	noRedraw    = flag.Bool("noredraw", false, "Don't redraw the board after every move")
	jsonHistory = flag.Bool("J", false, "Print move lists as JSON, and all finished games as a JSON array on exit")
	lineLength  = flag.Int("w", 80, "Maximum line length for move lists")

	// Statistics
	dbDir      = flag.String("db", "", "Statistics database directory (\"default\" for the platform data directory, empty disables)")
	inMemoryDB = flag.Bool("memdb", false, "Keep statistics in memory for this session only")
	noRecord   = flag.Bool("norecord", false, "Keep totals only, don't store individual games")

	// Logging
	verbosity = flag.Int("v", config.Events, "Log verbosity: 0=nothing, 1=game events, 2=every command")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyDisplayFlags(cfg)
	if err := applyStorageFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	return cfg.Validate()
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Flip = *flipBoard
	cfg.Display.ShowCoordinates = !*noCoords
	cfg.Display.ShowBoardAfterMove = !*noRedraw
	cfg.Display.JSONFormat = *jsonHistory
	cfg.Display.MaxLineLength = *lineLength
	if *asciiPieces {
		cfg.Display.Glyphs = config.LetterGlyphs
	} else {
		cfg.Display.Glyphs = config.UnicodeGlyphs
	}
}

// applyStorageFlags configures the statistics database.
func applyStorageFlags(cfg *config.Config) error {
	cfg.Storage.InMemory = *inMemoryDB
	cfg.Storage.RecordGames = !*noRecord

	dir := *dbDir
	if dir == defaultDBDir {
		var err error
		if dir, err = getDatabaseDir(); err != nil {
			return err
		}
	}
	cfg.Storage.Dir = dir
	return nil
}
