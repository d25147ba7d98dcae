// chessplay is a terminal chess game for two players at one keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const programVersion = "0.1.0"

// getDatabaseDir is replaced in tests.
var getDatabaseDir = storage.GetDatabaseDir

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	setupLogFile(cfg)
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	store, err := openStorage(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening statistics database: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close() //nolint:errcheck // cleanup on exit
	}

	if err := NewSession(cfg, store).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if store != nil {
			store.Close() //nolint:errcheck,gosec // os.Exit skips deferred calls
		}
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// openStorage opens the statistics database when one is configured.
func openStorage(cfg *config.Config) (*storage.Storage, error) {
	if !cfg.Storage.Enabled() {
		return nil, nil
	}
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}
	if cfg.Verbosity >= config.Events {
		where := cfg.Storage.Dir
		if cfg.Storage.InMemory {
			where = "memory"
		}
		fmt.Fprintf(cfg.LogFile, "Statistics database: %s\n", where)
	}
	return store, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal. Moves are read from standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s\n", helpText)
}
