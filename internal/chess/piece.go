package chess

import "fmt"

// Piece is a chess piece as stored in a Grid slot.
// The zero value is an empty slot.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Pos      Coord
	HasMoved bool
}

// NewPiece creates a piece of the given kind and colour standing on pos.
// It returns the empty piece when kind or colour does not name a real piece.
func NewPiece(kind Kind, colour Colour, pos Coord) Piece {
	switch kind {
	case Rook, Knight, Bishop, Queen, King, Pawn:
	default:
		return Piece{}
	}
	if colour != White && colour != Black {
		return Piece{}
	}
	return Piece{Kind: kind, Colour: colour, Pos: pos}
}

// IsEmpty returns true if p represents an empty slot.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// IsPromotion reports whether p is a pawn standing on its promotion rank.
func (p Piece) IsPromotion() bool {
	return p.Kind == Pawn && p.Pos.Rank == PromotionRank(p.Colour)
}

// String returns a short description such as "White Knight on g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Pos)
}

var (
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightJumps  = [][2]int{{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Moves returns the pseudo-legal destinations of p on g: squares the piece
// could occupy by its movement pattern, without regard to whether the move
// leaves its own king in check. The grid is not modified.
func (p Piece) Moves(g *Grid) []Coord {
	switch p.Kind {
	case Rook:
		return slidingMoves(g, p, straightDirs)
	case Bishop:
		return slidingMoves(g, p, diagonalDirs)
	case Queen:
		return slidingMoves(g, p, queenDirs)
	case Knight:
		return stepMoves(g, p, knightJumps)
	case King:
		return stepMoves(g, p, kingSteps)
	case Pawn:
		return pawnMoves(g, p)
	}
	return nil
}

// Attacks reports whether target is among p's pseudo-legal destinations.
func (p Piece) Attacks(g *Grid, target Coord) bool {
	for _, to := range p.Moves(g) {
		if to == target {
			return true
		}
	}
	return false
}

// slidingMoves walks each direction until blocked or off the board.
func slidingMoves(g *Grid, p Piece, dirs [][2]int) []Coord {
	var moves []Coord
	for _, dir := range dirs {
		to := p.Pos.Add(dir[0], dir[1])
		for to.InBounds() {
			target := g.At(to)
			if target.IsEmpty() {
				moves = append(moves, to)
			} else {
				if target.Colour != p.Colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			to = to.Add(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves handles the fixed-offset pieces (knight and king).
func stepMoves(g *Grid, p Piece, offsets [][2]int) []Coord {
	var moves []Coord
	for _, offset := range offsets {
		to := p.Pos.Add(offset[0], offset[1])
		if !to.InBounds() {
			continue
		}
		target := g.At(to)
		if target.IsEmpty() || target.Colour != p.Colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// pawnMoves generates pushes and diagonal captures. The double push is
// gated on the starting rank rather than HasMoved. No en passant.
func pawnMoves(g *Grid, p Piece) []Coord {
	var moves []Coord
	dir := PawnDirection(p.Colour)

	one := p.Pos.Add(0, dir)
	if one.InBounds() && g.At(one).IsEmpty() {
		moves = append(moves, one)
		two := p.Pos.Add(0, 2*dir)
		if p.Pos.Rank == PawnStartRank(p.Colour) && two.InBounds() && g.At(two).IsEmpty() {
			moves = append(moves, two)
		}
	}

	for _, df := range []int{-1, 1} {
		to := p.Pos.Add(df, dir)
		if !to.InBounds() {
			continue
		}
		target := g.At(to)
		if !target.IsEmpty() && target.Colour != p.Colour {
			moves = append(moves, to)
		}
	}
	return moves
}
