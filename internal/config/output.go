package config

// GlyphStyle selects how pieces are drawn on the text board.
type GlyphStyle int

const (
	UnicodeGlyphs GlyphStyle = iota // ♔ ♕ ♖ ...
	LetterGlyphs                    // K Q R ... for White, k q r ... for Black
)

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Glyphs selects Unicode chess symbols or plain letters
	Glyphs GlyphStyle

	// Flip draws the board from Black's side
	Flip bool

	// ShowCoordinates prints file letters and rank numbers around the board
	ShowCoordinates bool

	// ShowBoardAfterMove redraws the board after every committed move
	ShowBoardAfterMove bool

	// JSONFormat prints move lists as JSON, and the session's finished
	// games as one JSON array on exit
	JSONFormat bool

	// MaxLineLength wraps text move lists
	MaxLineLength int
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Glyphs:             UnicodeGlyphs,
		ShowCoordinates:    true,
		ShowBoardAfterMove: true,
		MaxLineLength:      80,
	}
}
