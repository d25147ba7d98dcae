package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Unicode chess symbols indexed by Kind.
var (
	whiteGlyphs = [chess.NumKinds]string{
		chess.Rook: "♖", chess.Knight: "♘", chess.Bishop: "♗",
		chess.Queen: "♕", chess.King: "♔", chess.Pawn: "♙",
	}
	blackGlyphs = [chess.NumKinds]string{
		chess.Rook: "♜", chess.Knight: "♞", chess.Bishop: "♝",
		chess.Queen: "♛", chess.King: "♚", chess.Pawn: "♟",
	}
)

const (
	emptySquare  = "."
	markedSquare = "*"
)

// Glyph returns the symbol drawn for p.
func Glyph(p chess.Piece, style config.GlyphStyle) string {
	if p.IsEmpty() {
		return emptySquare
	}
	if style == config.LetterGlyphs {
		letter := p.Kind.Letter()
		if p.Colour == chess.Black {
			letter += 'a' - 'A'
		}
		return string(letter)
	}
	if p.Colour == chess.White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

// RenderBoard draws the board followed by a line naming the side to move.
// Empty squares listed in marks are drawn as '*'.
func RenderBoard(w io.Writer, b *engine.Board, d *config.DisplayConfig, marks []chess.Coord) {
	if d == nil {
		d = config.NewDisplayConfig()
	}
	marked := make(map[chess.Coord]bool, len(marks))
	for _, c := range marks {
		marked[c] = true
	}

	files := make([]int, chess.BoardSize)
	ranks := make([]int, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		if d.Flip {
			files[i] = chess.BoardSize - 1 - i
			ranks[i] = chess.BoardSize - 1 - i
		} else {
			files[i] = i
			ranks[i] = i
		}
	}

	grid := b.Grid()
	if d.ShowCoordinates {
		fmt.Fprintln(w, fileLegend(files))
	}
	for _, rank := range ranks {
		cells := make([]string, 0, chess.BoardSize)
		for _, file := range files {
			c := chess.C(file, rank)
			p := grid.At(c)
			if p.IsEmpty() && marked[c] {
				cells = append(cells, markedSquare)
				continue
			}
			cells = append(cells, Glyph(p, d.Glyphs))
		}
		row := strings.Join(cells, " ")
		if d.ShowCoordinates {
			label := rankLabel(rank)
			row = label + " " + row + " " + label
		}
		fmt.Fprintln(w, row)
	}
	if d.ShowCoordinates {
		fmt.Fprintln(w, fileLegend(files))
	}
	fmt.Fprintln(w, TurnLine(b))
}

func fileLegend(files []int) string {
	letters := make([]string, len(files))
	for i, f := range files {
		letters[i] = string(rune('a' + f))
	}
	return "  " + strings.Join(letters, " ")
}

func rankLabel(rank int) string {
	return string(rune('8' - rank))
}

// TurnLine names the side to move.
func TurnLine(b *engine.Board) string {
	return "Turn: " + b.CurrentTurn().String()
}
