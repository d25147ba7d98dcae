package chess

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// squares converts square names to sorted coordinates.
func squares(t *testing.T, names ...string) []Coord {
	t.Helper()
	coords := make([]Coord, 0, len(names))
	for _, name := range names {
		c, ok := ParseSquare(name)
		if !ok {
			t.Fatalf("ParseSquare(%q) failed", name)
		}
		coords = append(coords, c)
	}
	sortCoords(coords)
	return coords
}

func sortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Index() < coords[j].Index()
	})
}

// place puts a fresh piece on the named square.
func place(t *testing.T, g *Grid, name string, kind Kind, colour Colour) Piece {
	t.Helper()
	c, ok := ParseSquare(name)
	if !ok {
		t.Fatalf("ParseSquare(%q) failed", name)
	}
	p := NewPiece(kind, colour, c)
	g.Set(c, p)
	return g.At(c)
}

func assertMoves(t *testing.T, g *Grid, p Piece, want []Coord) {
	t.Helper()
	got := p.Moves(g)
	sortCoords(got)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%v Moves() mismatch (-want +got):\n%s", p, diff)
	}
}

func TestNewPiece(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		colour Colour
		empty  bool
	}{
		{"rook", Rook, White, false},
		{"knight", Knight, Black, false},
		{"bishop", Bishop, White, false},
		{"queen", Queen, Black, false},
		{"king", King, White, false},
		{"pawn", Pawn, Black, false},
		{"no kind", NoKind, White, true},
		{"unknown kind", NumKinds, White, true},
		{"no colour", Queen, NoColour, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPiece(tt.kind, tt.colour, C(2, 5))
			if p.IsEmpty() != tt.empty {
				t.Fatalf("NewPiece(%v, %v).IsEmpty() = %v; want %v", tt.kind, tt.colour, p.IsEmpty(), tt.empty)
			}
			if tt.empty {
				return
			}
			if p.Kind != tt.kind || p.Colour != tt.colour || p.Pos != C(2, 5) || p.HasMoved {
				t.Errorf("NewPiece() = %+v", p)
			}
		})
	}
}

func TestRookMoves(t *testing.T) {
	t.Run("blocked in the corner at start", func(t *testing.T) {
		var g Grid
		g.SetupInitialPosition()
		assertMoves(t, &g, g.At(C(0, 7)), nil)
	})

	t.Run("boxed in by friendly pieces on all sides", func(t *testing.T) {
		var g Grid
		r := place(t, &g, "d4", Rook, White)
		place(t, &g, "d5", Pawn, White)
		place(t, &g, "d3", Knight, White)
		place(t, &g, "c4", Bishop, White)
		place(t, &g, "e4", King, White)
		assertMoves(t, &g, r, nil)
	})

	t.Run("open file stops on capture", func(t *testing.T) {
		var g Grid
		r := place(t, &g, "a1", Rook, White)
		place(t, &g, "a4", Pawn, Black)
		place(t, &g, "c1", Pawn, White)
		assertMoves(t, &g, r, squares(t, "a2", "a3", "a4", "b1"))
	})
}

func TestBishopMoves(t *testing.T) {
	var g Grid
	b := place(t, &g, "c1", Bishop, White)
	place(t, &g, "e3", Pawn, Black)
	assertMoves(t, &g, b, squares(t, "b2", "a3", "d2", "e3"))
}

func TestQueenMoves(t *testing.T) {
	var g Grid
	q := place(t, &g, "a1", Queen, Black)
	place(t, &g, "a2", Pawn, Black)
	place(t, &g, "b1", Knight, Black)
	want := squares(t, "b2", "c3", "d4", "e5", "f6", "g7", "h8")
	assertMoves(t, &g, q, want)

	t.Run("centre of an empty board", func(t *testing.T) {
		var g Grid
		q := place(t, &g, "d4", Queen, White)
		if n := len(q.Moves(&g)); n != 27 {
			t.Errorf("len(Moves()) = %d; want 27", n)
		}
	})
}

func TestKnightMoves(t *testing.T) {
	t.Run("starting knight", func(t *testing.T) {
		var g Grid
		g.SetupInitialPosition()
		assertMoves(t, &g, g.At(C(6, 7)), squares(t, "f3", "h3"))
	})

	t.Run("jumps over pieces and captures", func(t *testing.T) {
		var g Grid
		n := place(t, &g, "d4", Knight, White)
		place(t, &g, "d5", Pawn, White)
		place(t, &g, "e5", Pawn, White)
		place(t, &g, "e6", Pawn, Black)
		place(t, &g, "c6", Pawn, White)
		assertMoves(t, &g, n, squares(t, "e6", "f5", "f3", "e2", "c2", "b3", "b5"))
	})
}

func TestKingMoves(t *testing.T) {
	var g Grid
	k := place(t, &g, "h1", King, White)
	place(t, &g, "g2", Pawn, Black)
	place(t, &g, "h2", Pawn, White)
	assertMoves(t, &g, k, squares(t, "g1", "g2"))
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, g *Grid) Piece
		want  []string
	}{
		{
			name: "white double push from start",
			setup: func(t *testing.T, g *Grid) Piece {
				return place(t, g, "e2", Pawn, White)
			},
			want: []string{"e3", "e4"},
		},
		{
			name: "black double push from start",
			setup: func(t *testing.T, g *Grid) Piece {
				return place(t, g, "b7", Pawn, Black)
			},
			want: []string{"b6", "b5"},
		},
		{
			name: "double push blocked on intermediate square",
			setup: func(t *testing.T, g *Grid) Piece {
				place(t, g, "e3", Knight, Black)
				return place(t, g, "e2", Pawn, White)
			},
			want: nil,
		},
		{
			name: "double push blocked on destination",
			setup: func(t *testing.T, g *Grid) Piece {
				place(t, g, "e4", Knight, Black)
				return place(t, g, "e2", Pawn, White)
			},
			want: []string{"e3"},
		},
		{
			name: "single push only off the start rank",
			setup: func(t *testing.T, g *Grid) Piece {
				return place(t, g, "e3", Pawn, White)
			},
			want: []string{"e4"},
		},
		{
			name: "diagonal captures only of enemy pieces",
			setup: func(t *testing.T, g *Grid) Piece {
				place(t, g, "d5", Pawn, Black)
				place(t, g, "f5", Pawn, White)
				return place(t, g, "e4", Pawn, White)
			},
			want: []string{"e5", "d5"},
		},
		{
			name: "blocked pawn can still capture",
			setup: func(t *testing.T, g *Grid) Piece {
				place(t, g, "g6", Bishop, White)
				place(t, g, "g4", Pawn, Black)
				place(t, g, "h6", Rook, White)
				return place(t, g, "g7", Pawn, Black)
			},
			want: []string{"h6"},
		},
		{
			name: "edge file pawn",
			setup: func(t *testing.T, g *Grid) Piece {
				place(t, g, "b3", Knight, Black)
				return place(t, g, "a2", Pawn, White)
			},
			want: []string{"a3", "a4", "b3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			p := tt.setup(t, &g)
			assertMoves(t, &g, p, squares(t, tt.want...))
		})
	}
}

func TestMovesDoNotModifyGrid(t *testing.T) {
	var g Grid
	g.SetupInitialPosition()
	before := g
	for _, colour := range []Colour{White, Black} {
		for _, p := range g.Pieces(colour) {
			_ = p.Moves(&g)
		}
	}
	if g != before {
		t.Error("move generation modified the grid")
	}
}

func TestIsPromotion(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"white pawn on last rank", NewPiece(Pawn, White, C(3, 0)), true},
		{"black pawn on last rank", NewPiece(Pawn, Black, C(3, 7)), true},
		{"white pawn on seventh", NewPiece(Pawn, White, C(3, 1)), false},
		{"black pawn on white's promotion rank", NewPiece(Pawn, Black, C(3, 0)), false},
		{"queen on last rank", NewPiece(Queen, White, C(3, 0)), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.piece.IsPromotion(); got != tt.want {
				t.Errorf("IsPromotion() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestAttacks(t *testing.T) {
	var g Grid
	r := place(t, &g, "a1", Rook, White)
	place(t, &g, "a8", King, Black)
	if !r.Attacks(&g, C(0, 0)) {
		t.Error("rook on a1 should attack a8")
	}
	place(t, &g, "a5", Pawn, White)
	if r.Attacks(&g, C(0, 0)) {
		t.Error("blocked rook on a1 should not attack a8")
	}
}
