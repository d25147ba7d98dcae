package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveRecord holds everything needed to reverse one committed move.
// Records are created on commit and never modified afterwards.
type MoveRecord struct {
	From chess.Coord
	To   chess.Coord

	// Moved is the moving piece as it stood before the move.
	Moved chess.Piece

	// Captured is the piece taken on To; empty when nothing was captured.
	Captured chess.Piece

	// WasMoved is Moved.HasMoved before the move.
	WasMoved bool

	// Promoted is true when a pawn became a queen on To.
	Promoted bool

	// PreviousTurn is the side that made the move.
	PreviousTurn chess.Colour
}

// IsCapture returns true if this move took a piece.
func (r MoveRecord) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// history is a LIFO stack of committed moves.
type history struct {
	records []MoveRecord
}

func (h *history) push(r MoveRecord) {
	h.records = append(h.records, r)
}

func (h *history) pop() (MoveRecord, bool) {
	if len(h.records) == 0 {
		return MoveRecord{}, false
	}
	last := len(h.records) - 1
	r := h.records[last]
	h.records = h.records[:last]
	return r, true
}

func (h *history) len() int {
	return len(h.records)
}

func (h *history) clear() {
	h.records = nil
}

// History returns the committed moves not yet undone, most recent first.
func (b *Board) History() []MoveRecord {
	n := b.history.len()
	out := make([]MoveRecord, n)
	for i, r := range b.history.records {
		out[n-1-i] = r
	}
	return out
}

// Ply returns the number of committed moves not yet undone.
func (b *Board) Ply() int {
	return b.history.len()
}

// Undo reverses the most recent committed move. It returns false and
// changes nothing when there is no move to undo.
//
// Undo restores the raw fields only: the game is marked as running again
// and check status is not recomputed.
func (b *Board) Undo() bool {
	return b.UndoErr() == nil
}

// UndoErr is Undo reporting ErrNoHistory instead of false.
func (b *Board) UndoErr() error {
	r, ok := b.history.pop()
	if !ok {
		return errors.ErrNoHistory
	}

	b.grid.Set(r.From, r.Moved)
	b.grid.Set(r.To, r.Captured)
	b.turn = r.PreviousTurn
	b.gameOver = false
	b.winner = chess.NoColour
	return nil
}
