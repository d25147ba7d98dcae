// Package engine implements the rules of standard chess on top of the
// chess package: move legality, check, checkmate and stalemate detection,
// promotion, and single-step undo.
//
// A Board is a synchronous state machine. It is not safe for concurrent
// use; callers serialise every call.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Board owns the grid and all game state.
type Board struct {
	grid     chess.Grid
	turn     chess.Colour
	gameOver bool
	winner   chess.Colour
	history  history
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{turn: chess.White}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Initialize()
	return b
}

// Initialize populates the standard starting position and resets all
// game state, including the undo history.
func (b *Board) Initialize() {
	b.grid.SetupInitialPosition()
	b.reset()
}

// Clear empties the board and resets all game state.
func (b *Board) Clear() {
	b.grid.Clear()
	b.reset()
}

func (b *Board) reset() {
	b.turn = chess.White
	b.gameOver = false
	b.winner = chess.NoColour
	b.history.clear()
}

// CurrentTurn returns the side to move.
func (b *Board) CurrentTurn() chess.Colour {
	return b.turn
}

// GameOver reports whether the side to move has no legal move.
func (b *Board) GameOver() bool {
	return b.gameOver
}

// Winner returns the side that delivered checkmate, or NoColour when the
// game is still running or ended in stalemate.
func (b *Board) Winner() chess.Colour {
	return b.winner
}

// PieceAt returns a copy of the piece on c. The second result is false
// when the square is empty or off the board.
func (b *Board) PieceAt(c chess.Coord) (chess.Piece, bool) {
	p := b.grid.At(c)
	return p, !p.IsEmpty()
}

// Grid returns a copy of the board contents.
func (b *Board) Grid() chess.Grid {
	return b.grid
}

// Place puts a new piece of the given kind and colour on c, replacing any
// occupant. Editing the position discards the undo history because the
// recorded moves would no longer invert it.
func (b *Board) Place(kind chess.Kind, colour chess.Colour, c chess.Coord) bool {
	p := chess.NewPiece(kind, colour, c)
	if p.IsEmpty() || !c.InBounds() {
		return false
	}
	b.grid.Set(c, p)
	b.history.clear()
	return true
}

// Remove clears c. It discards the undo history like Place.
func (b *Board) Remove(c chess.Coord) bool {
	if b.grid.Take(c).IsEmpty() {
		return false
	}
	b.history.clear()
	return true
}

// SetTurn sets the side to move during position setup.
func (b *Board) SetTurn(colour chess.Colour) {
	if colour != chess.White && colour != chess.Black {
		return
	}
	b.turn = colour
	b.history.clear()
}

// Snapshot is a comparable copy of all observable board state.
type Snapshot struct {
	Grid       chess.Grid
	Turn       chess.Colour
	GameOver   bool
	Winner     chess.Colour
	HistoryLen int
}

// Snapshot captures the current state for later comparison.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Grid:       b.grid,
		Turn:       b.turn,
		GameOver:   b.gameOver,
		Winner:     b.winner,
		HistoryLen: b.history.len(),
	}
}
