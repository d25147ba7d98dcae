package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveResult is the outcome of a move attempt.
type MoveResult int

const (
	Invalid MoveResult = iota
	Success
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	names := []string{"Invalid", "Success", "Check", "Checkmate", "Stalemate"}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Committed reports whether the result means the move was made.
func (r MoveResult) Committed() bool {
	return r != Invalid
}

// AttemptMove tries to move the piece on from to to for the side to move.
// Every rejection reports Invalid and leaves the board untouched; use Move
// to learn the reason.
func (b *Board) AttemptMove(from, to chess.Coord) MoveResult {
	result, _ := b.Move(from, to)
	return result
}

// Move is AttemptMove returning a *errors.MoveError describing any
// rejection alongside the Invalid result.
func (b *Board) Move(from, to chess.Coord) (MoveResult, error) {
	if err := b.precheck(from, to); err != nil {
		return Invalid, b.moveError(err, from, to)
	}

	// Snapshot for rollback and undo. Pieces are values, so these are
	// independent copies.
	mover := b.grid.At(from)
	captured := b.grid.At(to)
	previousTurn := b.turn

	promoted := b.apply(from, to)

	if b.IsInCheck(previousTurn) {
		b.grid.Set(from, mover)
		b.grid.Set(to, captured)
		return Invalid, b.moveError(errors.ErrSelfCheck, from, to)
	}

	b.turn = previousTurn.Opposite()
	b.history.push(MoveRecord{
		From:         from,
		To:           to,
		Moved:        mover,
		Captured:     captured,
		WasMoved:     mover.HasMoved,
		Promoted:     promoted,
		PreviousTurn: previousTurn,
	})

	return b.Evaluate(), nil
}

// Validate reports why moving from to to would be rejected, or nil if the
// move is legal for the side to move. The board is left unchanged.
func (b *Board) Validate(from, to chess.Coord) error {
	if err := b.precheck(from, to); err != nil {
		return b.moveError(err, from, to)
	}
	if !b.tryMove(from, to, b.turn) {
		return b.moveError(errors.ErrSelfCheck, from, to)
	}
	return nil
}

// Evaluate classifies the position for the side to move and sets the
// game-over fields on checkmate or stalemate.
func (b *Board) Evaluate() MoveResult {
	inCheck := b.IsInCheck(b.turn)
	hasMoves := b.HasAnyLegalMove(b.turn)

	switch {
	case inCheck && !hasMoves:
		b.gameOver = true
		b.winner = b.turn.Opposite()
		return Checkmate
	case !hasMoves:
		b.gameOver = true
		b.winner = chess.NoColour
		return Stalemate
	case inCheck:
		return Check
	}
	return Success
}

// precheck covers the rejections that need no simulation.
func (b *Board) precheck(from, to chess.Coord) error {
	if b.gameOver {
		return errors.ErrGameOver
	}
	if !from.InBounds() || !to.InBounds() {
		return errors.ErrOutOfBounds
	}
	p := b.grid.At(from)
	if p.IsEmpty() {
		return errors.ErrEmptySquare
	}
	if p.Colour != b.turn {
		return errors.ErrWrongTurn
	}
	if !p.Attacks(&b.grid, to) {
		return errors.ErrUnreachable
	}
	return nil
}

// apply relocates the piece and promotes a pawn reaching its last rank.
// It returns true if a promotion happened.
func (b *Board) apply(from, to chess.Coord) bool {
	p := b.grid.Take(from)
	p.HasMoved = true
	b.grid.Set(to, p)

	if b.grid.At(to).IsPromotion() {
		b.grid.Set(to, chess.NewPiece(chess.Queen, p.Colour, to))
		return true
	}
	return false
}

func (b *Board) moveError(err error, from, to chess.Coord) error {
	return &errors.MoveError{
		Err:  err,
		From: from.String(),
		To:   to.String(),
		Ply:  b.history.len() + 1,
	}
}
