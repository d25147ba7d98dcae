package output

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameRecord is a finished or in-progress game in presentation form.
type GameRecord struct {
	ID       string      `json:"id,omitempty"`
	Result   string      `json:"result"`
	Winner   string      `json:"winner,omitempty"`
	PlyCount int         `json:"plyCount"`
	Moves    []MoveEntry `json:"moves,omitempty"`
}

// MoveEntry is one move of a GameRecord.
type MoveEntry struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// Notation returns the move in hyphenated long algebraic form, with 'x'
// for captures and "=Q" for promotions.
func (m MoveEntry) Notation() string {
	sep := "-"
	if m.Captured != "" {
		sep = "x"
	}
	s := m.From + sep + m.To
	if m.Promotion != "" {
		s += "=" + m.Promotion
	}
	return s
}

// NewGameRecord builds a record of the moves played on b, oldest first.
func NewGameRecord(id string, b *engine.Board) *GameRecord {
	history := b.History()
	rec := &GameRecord{
		ID:       id,
		Result:   ResultString(b),
		PlyCount: len(history),
		Moves:    make([]MoveEntry, 0, len(history)),
	}
	if b.GameOver() && b.Winner() != chess.NoColour {
		rec.Winner = colorName(b.Winner())
	}

	// History is most recent first. The move number advances on each
	// White move after the first ply, so a game started by Black reads
	// "1... 2.".
	moveNumber := 1
	for i := len(history) - 1; i >= 0; i-- {
		r := history[i]
		if i < len(history)-1 && r.PreviousTurn == chess.White {
			moveNumber++
		}
		rec.Moves = append(rec.Moves, convertMove(r, moveNumber))
	}
	return rec
}

func convertMove(r engine.MoveRecord, moveNumber int) MoveEntry {
	e := MoveEntry{
		MoveNumber: moveNumber,
		Color:      colorName(r.PreviousTurn),
		From:       r.From.String(),
		To:         r.To.String(),
		Piece:      r.Moved.Kind.String(),
	}
	if r.IsCapture() {
		e.Captured = r.Captured.Kind.String()
	}
	if r.Promoted {
		e.Promotion = string(chess.Queen.Letter())
	}
	return e
}

func colorName(c chess.Colour) string {
	switch c {
	case chess.White:
		return "white"
	case chess.Black:
		return "black"
	}
	return ""
}
