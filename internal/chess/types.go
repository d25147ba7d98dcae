// Package chess provides core chess types and pseudo-legal move generation.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
// NoColour never labels a real piece; it marks empty squares and a drawn game.
type Colour int

const (
	NoColour Colour = iota
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Rook
	Knight
	Bishop
	Queen
	King
	Pawn
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Rook", "Knight", "Bishop", "Queen", "King", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'R', 'N', 'B', 'Q', 'K', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// Rank 0 is Black's back rank, rank 7 is White's.
	WhitePawnRank = 6
	BlackPawnRank = 1
	WhiteBackRank = 7
	BlackBackRank = 0
)

// Coord is a board coordinate. File runs 0..7 from the a-file to the
// h-file; Rank runs 0..7 from Black's side to White's side.
type Coord struct {
	File int
	Rank int
}

// C is shorthand for Coord{file, rank}.
func C(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Add returns the coordinate offset by (df, dr).
func (c Coord) Add(df, dr int) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

// Index returns the position of the coordinate in a Grid.
// The result is meaningless when the coordinate is out of bounds.
func (c Coord) Index() int {
	return c.Rank*BoardSize + c.File
}

// CoordFromIndex is the inverse of Index.
func CoordFromIndex(i int) Coord {
	return Coord{File: i % BoardSize, Rank: i / BoardSize}
}

// String returns the square name (e.g. "e2") for in-bounds coordinates
// and the raw pair otherwise.
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return fmt.Sprintf("%c%c", 'a'+c.File, '8'-c.Rank)
}

// ParseSquare converts a square name such as "e2" into a Coord.
func ParseSquare(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	file := int(s[0]) - 'a'
	rank := '8' - int(s[1])
	c := Coord{File: file, Rank: rank}
	return c, c.InBounds()
}

// PawnDirection returns the rank step a pawn of the colour advances by.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRank returns the rank a pawn of the colour starts on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return WhitePawnRank
	}
	return BlackPawnRank
}

// PromotionRank returns the farthest rank from the colour's own side.
func PromotionRank(colour Colour) int {
	if colour == White {
		return BlackBackRank
	}
	return WhiteBackRank
}
