// Package parser tokenises and parses terminal commands for the chess driver.
package parser

import "github.com/lgbarn/chessrules-go/internal/chess"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOLToken    TokenType = iota
	WordToken             // keyword such as undo or quit
	SquareToken           // algebraic square such as e2
	PairToken             // two squares written together such as e2e4
	CoordToken            // numeric file,rank pair such as 4,6
	DashToken             // optional separator between squares

	// Internal tokens used for identification
	Whitespace
	Alpha
	Digit
	Comma
	NoToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOLToken:    "EOL",
	WordToken:   "WORD",
	SquareToken: "SQUARE",
	PairToken:   "PAIR",
	CoordToken:  "COORD",
	DashToken:   "DASH",
	Whitespace:  "WHITESPACE",
	Alpha:       "ALPHA",
	Digit:       "DIGIT",
	Comma:       "COMMA",
	NoToken:     "NO_TOKEN",
	ErrorToken:  "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the source text of the token
	Text string

	// Square holds the coordinate for SquareToken and CoordToken,
	// and the first square of a PairToken
	Square chess.Coord

	// To holds the second square of a PairToken
	To chess.Coord

	// Column for error reporting (1-based)
	Column int
}

// IsSquare reports whether the token names a single board coordinate.
func (t *Token) IsSquare() bool {
	return t.Type == SquareToken || t.Type == CoordToken
}
