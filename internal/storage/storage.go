// Package storage persists game statistics and finished games in BadgerDB.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Storage keys
const (
	keyStats      = "stats"
	keyGamePrefix = "game/"
)

// GameStats stores totals across all recorded games.
type GameStats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Draws       int `json:"draws"`
	Unfinished  int `json:"unfinished"`
	TotalPlies  int `json:"total_plies"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{}
}

// AveragePlies returns the mean game length in plies.
func (s *GameStats) AveragePlies() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.GamesPlayed)
}

// Outcome is how a recorded game ended.
type Outcome string

const (
	WhiteWon   Outcome = "white"
	BlackWon   Outcome = "black"
	Draw       Outcome = "draw"
	Unfinished Outcome = "unfinished"
)

// GameSummary is one recorded game.
type GameSummary struct {
	ID         string    `json:"id"`
	Outcome    Outcome   `json:"outcome"`
	Plies      int       `json:"plies"`
	Moves      []string  `json:"moves,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db          *badger.DB
	recordGames bool
}

// Open opens the database described by cfg. The caller must Close it.
func Open(cfg *config.StorageConfig) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, storageError(err, fmt.Sprintf("opening database %q", cfg.Dir))
	}

	return &Storage{db: db, recordGames: cfg.RecordGames}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, keyStats, stats)
	})
	if err != nil {
		return nil, storageError(err, "loading stats")
	}
	return stats, nil
}

// RecordGame adds a game to the totals and, when enabled, stores the game
// itself. Both writes happen in one transaction. An empty ID is replaced
// by a new UUID, which is returned.
func (s *Storage) RecordGame(game GameSummary) (string, error) {
	if game.ID == "" {
		game.ID = uuid.NewString()
	} else if _, err := uuid.Parse(game.ID); err != nil {
		return "", storageError(err, "recording game "+game.ID)
	}
	if game.FinishedAt.IsZero() {
		game.FinishedAt = time.Now()
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		stats := NewGameStats()
		if err := getJSON(txn, keyStats, stats); err != nil {
			return err
		}

		stats.GamesPlayed++
		stats.TotalPlies += game.Plies
		switch game.Outcome {
		case WhiteWon:
			stats.WhiteWins++
		case BlackWon:
			stats.BlackWins++
		case Draw:
			stats.Draws++
		default:
			stats.Unfinished++
		}

		if err := setJSON(txn, keyStats, stats); err != nil {
			return err
		}
		if !s.recordGames {
			return nil
		}
		return setJSON(txn, keyGamePrefix+game.ID, &game)
	})
	if err != nil {
		return "", storageError(err, "recording game "+game.ID)
	}
	return game.ID, nil
}

// ListGames returns every recorded game, oldest first.
func (s *Storage) ListGames() ([]GameSummary, error) {
	var games []GameSummary
	prefix := []byte(keyGamePrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var game GameSummary
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &game)
			})
			if err != nil {
				return err
			}
			games = append(games, game)
		}
		return nil
	})
	if err != nil {
		return nil, storageError(err, "listing games")
	}

	sortByFinish(games)
	return games, nil
}

// getJSON decodes the value at key into v, leaving v untouched if the
// key does not exist.
func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}

// storageError marks err as a storage failure unless it already is one.
func storageError(err error, context string) error {
	if !stderrors.Is(err, errors.ErrStorage) {
		err = fmt.Errorf("%w: %w", errors.ErrStorage, err)
	}
	return errors.Wrap(err, context)
}

func sortByFinish(games []GameSummary) {
	slices.SortStableFunc(games, func(a, b GameSummary) int {
		return a.FinishedAt.Compare(b.FinishedAt)
	})
}
