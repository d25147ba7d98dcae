// Package config provides configuration for the chessplay terminal driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for the driver log.
const (
	Silent   = 0 // nothing
	Events   = 1 // game start, result, storage activity
	Commands = 2 // every command and its outcome
)

// Config holds all driver configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=every command

	// Sub-configurations
	Display *DisplayConfig
	Storage *StorageConfig

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Events,
		Display:    NewDisplayConfig(),
		Storage:    NewStorageConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration can drive a session.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commands {
		return fmt.Errorf("verbosity %d out of range [%d, %d]: %w",
			c.Verbosity, Silent, Commands, errors.ErrInvalidConfig)
	}
	if c.InputFile == nil || c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("input, output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	if c.Display == nil || c.Storage == nil {
		return fmt.Errorf("missing sub-configuration: %w", errors.ErrInvalidConfig)
	}
	return c.Storage.Validate()
}
