package engine

// IsCheckmate returns true if the position is checkmate for the side to move.
func (b *Board) IsCheckmate() bool {
	colour := b.turn
	return b.IsInCheck(colour) && !b.HasAnyLegalMove(colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (b *Board) IsStalemate() bool {
	colour := b.turn
	return !b.IsInCheck(colour) && !b.HasAnyLegalMove(colour)
}
