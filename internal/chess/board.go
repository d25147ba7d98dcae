package chess

// Grid is the 8x8 board stored as a flat array indexed by Coord.Index.
// Each slot owns at most one piece; an empty Piece marks a vacant slot.
type Grid [NumSquares]Piece

// At returns the piece on c, or the empty piece when c is off the board.
func (g *Grid) At(c Coord) Piece {
	if !c.InBounds() {
		return Piece{}
	}
	return g[c.Index()]
}

// Set places p on c and re-establishes p.Pos == c.
// Placing an empty piece clears the slot.
func (g *Grid) Set(c Coord, p Piece) {
	if !c.InBounds() {
		return
	}
	if p.IsEmpty() {
		g[c.Index()] = Piece{}
		return
	}
	p.Pos = c
	g[c.Index()] = p
}

// Take removes and returns the piece on c.
func (g *Grid) Take(c Coord) Piece {
	p := g.At(c)
	if c.InBounds() {
		g[c.Index()] = Piece{}
	}
	return p
}

// Clear empties every square.
func (g *Grid) Clear() {
	*g = Grid{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (g *Grid) SetupInitialPosition() {
	g.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		g.Set(C(file, BlackBackRank), NewPiece(backRank[file], Black, C(file, BlackBackRank)))
		g.Set(C(file, BlackPawnRank), NewPiece(Pawn, Black, C(file, BlackPawnRank)))
		g.Set(C(file, WhitePawnRank), NewPiece(Pawn, White, C(file, WhitePawnRank)))
		g.Set(C(file, WhiteBackRank), NewPiece(backRank[file], White, C(file, WhiteBackRank)))
	}
}

// FindKing returns the square of the colour's king.
// The second result is false when that king is not on the board.
func (g *Grid) FindKing(colour Colour) (Coord, bool) {
	for i, p := range g {
		if p.Kind == King && p.Colour == colour {
			return CoordFromIndex(i), true
		}
	}
	return Coord{}, false
}

// Pieces returns the pieces of the given colour in index order.
func (g *Grid) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range g {
		if !p.IsEmpty() && p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Count returns the number of pieces of the given kind and colour.
func (g *Grid) Count(kind Kind, colour Colour) int {
	n := 0
	for _, p := range g {
		if p.Kind == kind && p.Colour == colour {
			n++
		}
	}
	return n
}
