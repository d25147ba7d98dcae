package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithInput sets the command input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithGlyphs sets the piece glyph style.
func (b *ConfigBuilder) WithGlyphs(style GlyphStyle) *ConfigBuilder {
	b.cfg.Display.Glyphs = style
	return b
}

// WithCoordinates controls whether board coordinates are printed.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Display.ShowCoordinates = show
	return b
}

// WithBoardAfterMove controls whether the board is redrawn after each move.
func (b *ConfigBuilder) WithBoardAfterMove(show bool) *ConfigBuilder {
	b.cfg.Display.ShowBoardAfterMove = show
	return b
}

// WithJSONOutput prints move lists and finished games as JSON.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Display.JSONFormat = enabled
	return b
}

// WithMaxLineLength sets the wrap column for text move lists.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Display.MaxLineLength = length
	return b
}

// WithStorageDir enables persistent statistics in dir.
func (b *ConfigBuilder) WithStorageDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	return b
}

// WithInMemoryStorage keeps statistics in memory for the session.
func (b *ConfigBuilder) WithInMemoryStorage(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// RecordGames controls whether finished games are stored individually.
func (b *ConfigBuilder) RecordGames(record bool) *ConfigBuilder {
	b.cfg.Storage.RecordGames = record
	return b
}
