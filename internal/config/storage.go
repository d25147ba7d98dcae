package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StorageConfig holds settings for the game statistics database.
type StorageConfig struct {
	// Dir is the database directory; empty disables persistence
	Dir string

	// InMemory keeps the database in memory and ignores Dir
	InMemory bool

	// RecordGames stores a record of every finished game, not just the totals
	RecordGames bool
}

// NewStorageConfig creates a StorageConfig with default values.
// Persistence is disabled until a directory is set.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		RecordGames: true,
	}
}

// Enabled reports whether a database should be opened.
func (s *StorageConfig) Enabled() bool {
	return s.InMemory || s.Dir != ""
}

// Validate checks that the storage configuration is consistent.
func (s *StorageConfig) Validate() error {
	if s.InMemory && s.Dir != "" {
		return fmt.Errorf("in-memory storage cannot use directory %q: %w", s.Dir, errors.ErrInvalidConfig)
	}
	return nil
}
