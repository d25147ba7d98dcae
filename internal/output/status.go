package output

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Status messages shown after player actions.
const (
	StalemateMessage    = "Stalemate! Game ended in a draw."
	UndoMessage         = "Undo successful!"
	NothingToUndo       = "No moves to undo!"
	InvalidMoveMessage  = "Invalid move."
	gameOverHintMessage = "Type 'undo' to take back the last move or 'new' to start again."
)

// CheckMessage announces that colour is in check.
func CheckMessage(colour chess.Colour) string {
	return colour.String() + " is in check!"
}

// CheckmateMessage announces the winner.
func CheckmateMessage(winner chess.Colour) string {
	return "Checkmate! " + winner.String() + " wins!"
}

// MoveStatus returns the message for a move result, or "" when a quiet
// move needs no comment.
func MoveStatus(result engine.MoveResult, b *engine.Board) string {
	switch result {
	case engine.Invalid:
		return InvalidMoveMessage
	case engine.Check:
		return CheckMessage(b.CurrentTurn())
	case engine.Checkmate, engine.Stalemate:
		return GameOverStatus(b)
	}
	return ""
}

// GameOverStatus describes a finished game, or returns "" while play
// continues.
func GameOverStatus(b *engine.Board) string {
	if !b.GameOver() {
		return ""
	}
	if b.Winner() == chess.NoColour {
		return StalemateMessage
	}
	return CheckmateMessage(b.Winner())
}

// UndoStatus returns the message for an undo attempt.
func UndoStatus(ok bool) string {
	if ok {
		return UndoMessage
	}
	return NothingToUndo
}

// GameOverHint tells the player what they can still do.
func GameOverHint() string {
	return gameOverHintMessage
}

// ResultString returns the conventional score for a finished game:
// "1-0", "0-1", "1/2-1/2", or "*" while the game is in progress.
func ResultString(b *engine.Board) string {
	if !b.GameOver() {
		return "*"
	}
	switch b.Winner() {
	case chess.White:
		return "1-0"
	case chess.Black:
		return "0-1"
	}
	return "1/2-1/2"
}
