// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	// Every more specific move rejection below wraps it.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrIllegalMove)

	// ErrOutOfBounds indicates a coordinate off the 8x8 board.
	ErrOutOfBounds = fmt.Errorf("%w: square off the board", ErrIllegalMove)

	// ErrEmptySquare indicates there is no piece on the source square.
	ErrEmptySquare = fmt.Errorf("%w: no piece on source square", ErrIllegalMove)

	// ErrWrongTurn indicates the piece belongs to the side not on move.
	ErrWrongTurn = fmt.Errorf("%w: not that side's turn", ErrIllegalMove)

	// ErrUnreachable indicates the destination is not in the piece's movement pattern.
	ErrUnreachable = fmt.Errorf("%w: piece cannot reach destination", ErrIllegalMove)

	// ErrSelfCheck indicates the move would leave the mover's king in check.
	ErrSelfCheck = fmt.Errorf("%w: move leaves king in check", ErrIllegalMove)

	// ErrNoHistory indicates an undo with no committed moves.
	ErrNoHistory = errors.New("no moves to undo")

	// ErrBadCommand indicates terminal input that could not be understood.
	ErrBadCommand = errors.New("unrecognised command")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStorage indicates a failure reading or writing persisted statistics.
	ErrStorage = errors.New("storage failure")
)

// MoveError wraps a move rejection with the squares and ply involved.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Source square name
	To   string // Destination square name
	Ply  int    // Ply the move would have been (1-based, 0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a command parsing error with column context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The full input line
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
