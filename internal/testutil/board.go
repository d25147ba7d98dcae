package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Sq converts a square name such as "e2" to a coordinate.
// It calls t.Fatal if the name is not a square.
func Sq(t testing.TB, name string) chess.Coord {
	t.Helper()
	c, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return c
}

// Squares converts several square names to coordinates.
func Squares(t testing.TB, names ...string) []chess.Coord {
	t.Helper()
	coords := make([]chess.Coord, 0, len(names))
	for _, name := range names {
		coords = append(coords, Sq(t, name))
	}
	return coords
}

// MustPlay plays moves written as "e2e4" from the current position and
// returns the result of the last one. It calls t.Fatal on the first move
// the engine rejects.
func MustPlay(t testing.TB, b *engine.Board, moves ...string) engine.MoveResult {
	t.Helper()
	result := engine.Invalid
	for _, m := range moves {
		if len(m) != 4 {
			t.Fatalf("malformed move %q", m)
		}
		var err error
		result, err = b.Move(Sq(t, m[:2]), Sq(t, m[2:]))
		if err != nil {
			t.Fatalf("move %s rejected: %v", m, err)
		}
	}
	return result
}

// BoardFromDiagram builds a board from eight rows of eight characters,
// rank 8 first. Upper case letters are White pieces, lower case Black,
// and '.' an empty square.
func BoardFromDiagram(t testing.TB, toMove chess.Colour, rows ...string) *engine.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := engine.NewBoard()
	for rank, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			t.Fatalf("diagram row %d is %q, want %d squares", rank, row, chess.BoardSize)
		}
		for file := 0; file < chess.BoardSize; file++ {
			ch := row[file]
			if ch == '.' {
				continue
			}
			kind, colour, ok := pieceFromLetter(ch)
			if !ok {
				t.Fatalf("diagram row %d has unknown piece %q", rank, ch)
			}
			b.Place(kind, colour, chess.C(file, rank))
		}
	}
	b.SetTurn(toMove)
	return b
}

func pieceFromLetter(ch byte) (chess.Kind, chess.Colour, bool) {
	colour := chess.White
	if ch >= 'a' && ch <= 'z' {
		colour = chess.Black
		ch -= 'a' - 'A'
	}
	for k := chess.Rook; k < chess.NumKinds; k++ {
		if k.Letter() == ch {
			return k, colour, true
		}
	}
	return chess.NoKind, chess.NoColour, false
}
