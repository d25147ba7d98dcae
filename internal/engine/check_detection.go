package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func (b *Board) IsInCheck(colour chess.Colour) bool {
	king, ok := b.grid.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return b.isSquareAttacked(king, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour has target among
// its pseudo-legal destinations.
func (b *Board) isSquareAttacked(target chess.Coord, byColour chess.Colour) bool {
	for _, p := range b.grid {
		if p.IsEmpty() || p.Colour != byColour {
			continue
		}
		if p.Attacks(&b.grid, target) {
			return true
		}
	}
	return false
}
