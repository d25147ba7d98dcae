package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasAnyLegalMove returns true if the given colour has at least one move
// that does not leave its own king in check. It tries every pseudo-legal
// move in turn and stops at the first safe one.
func (b *Board) HasAnyLegalMove(colour chess.Colour) bool {
	for _, p := range b.grid.Pieces(colour) {
		for _, to := range p.Moves(&b.grid) {
			if b.tryMove(p.Pos, to, colour) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns the destinations the piece on from may legally move
// to. It returns nil for an empty square. The side to move is not
// consulted, so the moves of either side can be listed.
func (b *Board) LegalMoves(from chess.Coord) []chess.Coord {
	p := b.grid.At(from)
	if p.IsEmpty() {
		return nil
	}
	var legal []chess.Coord
	for _, to := range p.Moves(&b.grid) {
		if b.tryMove(from, to, p.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// tryMove provisionally makes the move, tests whether colour's king is
// safe, and always takes the move back.
func (b *Board) tryMove(from, to chess.Coord, colour chess.Colour) bool {
	moved, displaced := b.simulate(from, to)
	safe := !b.IsInCheck(colour)
	b.unsimulate(from, to, moved, displaced)
	return safe
}

// simulate transfers the piece on from to to without any bookkeeping and
// returns both original occupants.
func (b *Board) simulate(from, to chess.Coord) (moved, displaced chess.Piece) {
	moved = b.grid.Take(from)
	displaced = b.grid.Take(to)
	b.grid.Set(to, moved)
	return moved, displaced
}

// unsimulate restores both squares touched by simulate.
func (b *Board) unsimulate(from, to chess.Coord, moved, displaced chess.Piece) {
	b.grid.Set(from, moved)
	b.grid.Set(to, displaced)
}
