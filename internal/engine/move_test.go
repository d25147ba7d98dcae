package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewInitialBoard(t *testing.T) {
	b := engine.NewInitialBoard()

	testutil.AssertEqual(t, b.CurrentTurn(), chess.White)
	testutil.AssertFalse(t, b.GameOver())
	testutil.AssertEqual(t, b.Winner(), chess.NoColour)
	testutil.AssertEqual(t, b.Ply(), 0)

	if p, ok := b.PieceAt(testutil.Sq(t, "e1")); !ok || p.Kind != chess.King || p.Colour != chess.White {
		t.Errorf("PieceAt(e1) = %v, %v; want White King", p, ok)
	}
	if _, ok := b.PieceAt(testutil.Sq(t, "e4")); ok {
		t.Error("PieceAt(e4) reported a piece on an empty square")
	}
	if _, ok := b.PieceAt(chess.C(-1, 4)); ok {
		t.Error("PieceAt(off board) reported a piece")
	}
}

func TestInitializeResetsGame(t *testing.T) {
	b := engine.NewInitialBoard()
	testutil.MustPlay(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertTrue(t, b.GameOver())

	b.Initialize()

	testutil.AssertEqual(t, b.Snapshot(), engine.NewInitialBoard().Snapshot())
	testutil.AssertFalse(t, b.Undo(), "history should be cleared")
}

func TestOpeningMoves(t *testing.T) {
	b := engine.NewInitialBoard()

	testutil.AssertEqual(t, b.AttemptMove(chess.C(6, 6), chess.C(6, 4)), engine.Success)
	testutil.AssertEqual(t, b.CurrentTurn(), chess.Black)
	testutil.AssertEqual(t, b.AttemptMove(chess.C(1, 1), chess.C(1, 3)), engine.Success)
	testutil.AssertEqual(t, b.CurrentTurn(), chess.White)
	testutil.AssertEqual(t, b.Ply(), 2)

	p, ok := b.PieceAt(chess.C(6, 4))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p.Pos, chess.C(6, 4))
	testutil.AssertTrue(t, p.HasMoved)
	_, ok = b.PieceAt(chess.C(6, 6))
	testutil.AssertFalse(t, ok, "source square should be empty")
}

func TestRejectedMovesChangeNothing(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) *engine.Board
		from   chess.Coord
		to     chess.Coord
		reason error
	}{
		{
			name:   "black piece on white's turn",
			setup:  func(t *testing.T) *engine.Board { return engine.NewInitialBoard() },
			from:   chess.C(4, 1),
			to:     chess.C(4, 3),
			reason: errors.ErrWrongTurn,
		},
		{
			name:   "empty source square",
			setup:  func(t *testing.T) *engine.Board { return engine.NewInitialBoard() },
			from:   chess.C(4, 4),
			to:     chess.C(4, 3),
			reason: errors.ErrEmptySquare,
		},
		{
			name:   "source off the board",
			setup:  func(t *testing.T) *engine.Board { return engine.NewInitialBoard() },
			from:   chess.C(8, 6),
			to:     chess.C(4, 4),
			reason: errors.ErrOutOfBounds,
		},
		{
			name:   "destination off the board",
			setup:  func(t *testing.T) *engine.Board { return engine.NewInitialBoard() },
			from:   chess.C(0, 7),
			to:     chess.C(0, 8),
			reason: errors.ErrOutOfBounds,
		},
		{
			name:   "pawn three squares",
			setup:  func(t *testing.T) *engine.Board { return engine.NewInitialBoard() },
			from:   chess.C(4, 6),
			to:     chess.C(4, 3),
			reason: errors.ErrUnreachable,
		},
		{
			name:   "capturing own piece",
			setup:  func(t *testing.T) *engine.Board { return engine.NewInitialBoard() },
			from:   chess.C(0, 7),
			to:     chess.C(0, 6),
			reason: errors.ErrUnreachable,
		},
		{
			name:   "blocked rook",
			setup:  func(t *testing.T) *engine.Board { return engine.NewInitialBoard() },
			from:   chess.C(0, 7),
			to:     chess.C(0, 5),
			reason: errors.ErrUnreachable,
		},
		{
			name: "pinned bishop",
			setup: func(t *testing.T) *engine.Board {
				return testutil.BoardFromDiagram(t, chess.White,
					"....r..k",
					"........",
					"........",
					"........",
					"........",
					"........",
					"....B...",
					"....K...",
				)
			},
			from:   chess.C(4, 6),
			to:     chess.C(3, 5),
			reason: errors.ErrSelfCheck,
		},
		{
			name: "king steps into check",
			setup: func(t *testing.T) *engine.Board {
				return testutil.BoardFromDiagram(t, chess.White,
					".......k",
					"........",
					"........",
					"........",
					"........",
					"........",
					"...r....",
					"....K...",
				)
			},
			from:   chess.C(4, 7),
			to:     chess.C(4, 6),
			reason: errors.ErrSelfCheck,
		},
		{
			name: "ignoring check",
			setup: func(t *testing.T) *engine.Board {
				b := engine.NewInitialBoard()
				testutil.MustPlay(t, b, "e2e4", "f7f6", "d1h5")
				return b
			},
			from:   chess.C(0, 1),
			to:     chess.C(0, 2),
			reason: errors.ErrSelfCheck,
		},
		{
			name: "game already over",
			setup: func(t *testing.T) *engine.Board {
				b := engine.NewInitialBoard()
				testutil.MustPlay(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
				return b
			},
			from:   chess.C(0, 6),
			to:     chess.C(0, 5),
			reason: errors.ErrGameOver,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := tt.setup(t)
			before := b.Snapshot()

			testutil.AssertErrorIs(t, b.Validate(tt.from, tt.to), tt.reason, "Validate")
			testutil.AssertEqual(t, b.Snapshot(), before, "Validate changed the board")

			testutil.AssertEqual(t, b.AttemptMove(tt.from, tt.to), engine.Invalid)
			testutil.AssertEqual(t, b.Snapshot(), before, "AttemptMove changed the board")

			result, err := b.Move(tt.from, tt.to)
			testutil.AssertEqual(t, result, engine.Invalid)
			testutil.AssertErrorIs(t, err, tt.reason, "Move")
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "Move")
			testutil.AssertEqual(t, b.Snapshot(), before, "Move changed the board")
		})
	}
}

func TestMoveErrorContext(t *testing.T) {
	b := engine.NewInitialBoard()
	testutil.MustPlay(t, b, "e2e4")

	_, err := b.Move(testutil.Sq(t, "e4"), testutil.Sq(t, "e5"))

	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("Move() error = %v, want *errors.MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.From, "e4")
	testutil.AssertEqual(t, moveErr.To, "e5")
	testutil.AssertEqual(t, moveErr.Ply, 2)
}

func TestValidateAcceptsLegalMove(t *testing.T) {
	b := engine.NewInitialBoard()
	before := b.Snapshot()

	testutil.AssertNoError(t, b.Validate(testutil.Sq(t, "g1"), testutil.Sq(t, "f3")))
	testutil.AssertEqual(t, b.Snapshot(), before)
}

func TestCheck(t *testing.T) {
	b := engine.NewInitialBoard()
	result := testutil.MustPlay(t, b, "e2e4", "f7f6", "d1h5")

	testutil.AssertEqual(t, result, engine.Check)
	testutil.AssertTrue(t, b.IsInCheck(chess.Black))
	testutil.AssertFalse(t, b.IsInCheck(chess.White))
	testutil.AssertFalse(t, b.GameOver())
	testutil.AssertEqual(t, b.CurrentTurn(), chess.Black)

	// g7g6 blocks.
	testutil.AssertEqual(t, testutil.MustPlay(t, b, "g7g6"), engine.Success)
	testutil.AssertFalse(t, b.IsInCheck(chess.Black))
}

func TestFoolsMate(t *testing.T) {
	b := engine.NewInitialBoard()
	result := testutil.MustPlay(t, b, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, result, engine.Checkmate)
	testutil.AssertTrue(t, b.GameOver())
	testutil.AssertEqual(t, b.Winner(), chess.Black)
	testutil.AssertEqual(t, b.CurrentTurn(), chess.White)
	testutil.AssertTrue(t, b.IsInCheck(chess.White))
	testutil.AssertFalse(t, b.HasAnyLegalMove(chess.White))
	testutil.AssertTrue(t, b.IsCheckmate())
	testutil.AssertFalse(t, b.IsStalemate())
}

func TestStalemate(t *testing.T) {
	b := testutil.BoardFromDiagram(t, chess.White,
		"k.......",
		"..K.....",
		"........",
		".Q......",
		"........",
		"........",
		"........",
		"........",
	)

	result := testutil.MustPlay(t, b, "b5b6")

	testutil.AssertEqual(t, result, engine.Stalemate)
	testutil.AssertTrue(t, b.GameOver())
	testutil.AssertEqual(t, b.Winner(), chess.NoColour)
	testutil.AssertEqual(t, b.CurrentTurn(), chess.Black)
	testutil.AssertFalse(t, b.IsInCheck(chess.Black))
	testutil.AssertTrue(t, b.IsStalemate())

	testutil.AssertEqual(t, b.AttemptMove(testutil.Sq(t, "a8"), testutil.Sq(t, "a7")), engine.Invalid)
}

func TestPromotion(t *testing.T) {
	t.Run("push promotes to queen", func(t *testing.T) {
		b := testutil.BoardFromDiagram(t, chess.White,
			"........",
			".P......",
			"........",
			".......k",
			"........",
			"........",
			"........",
			".......K",
		)

		result := testutil.MustPlay(t, b, "b7b8")

		testutil.AssertEqual(t, result, engine.Success)
		p, ok := b.PieceAt(testutil.Sq(t, "b8"))
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, p.Kind, chess.Queen)
		testutil.AssertEqual(t, p.Colour, chess.White)
		testutil.AssertEqual(t, p.Pos, testutil.Sq(t, "b8"))
		testutil.AssertTrue(t, b.History()[0].Promoted)
	})

	t.Run("black promotes on rank one", func(t *testing.T) {
		b := testutil.BoardFromDiagram(t, chess.Black,
			"k.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"......p.",
			"K.......",
		)

		// The new queen on g1 checks the king on a1 along the first rank.
		result := testutil.MustPlay(t, b, "g2g1")

		testutil.AssertEqual(t, result, engine.Check)
		p, _ := b.PieceAt(testutil.Sq(t, "g1"))
		testutil.AssertEqual(t, p.Kind, chess.Queen)
		testutil.AssertEqual(t, p.Colour, chess.Black)
	})

	t.Run("capture promotion and pinned push", func(t *testing.T) {
		b := testutil.BoardFromDiagram(t, chess.White,
			".....b..",
			"......P.",
			".......K",
			"........",
			"........",
			"........",
			"........",
			"k.......",
		)
		before := b.Snapshot()

		// The pawn is pinned against h6 by the bishop, so pushing is illegal
		// and must leave a pawn (not a queen) on g7.
		testutil.AssertEqual(t, b.AttemptMove(testutil.Sq(t, "g7"), testutil.Sq(t, "g8")), engine.Invalid)
		testutil.AssertEqual(t, b.Snapshot(), before)

		testutil.AssertEqual(t, testutil.MustPlay(t, b, "g7f8"), engine.Success)
		p, _ := b.PieceAt(testutil.Sq(t, "f8"))
		testutil.AssertEqual(t, p.Kind, chess.Queen)
		rec := b.History()[0]
		testutil.AssertTrue(t, rec.Promoted)
		testutil.AssertTrue(t, rec.IsCapture())
		testutil.AssertEqual(t, rec.Captured.Kind, chess.Bishop)
	})
}

func TestSelfCheckRollbackRestoresHasMoved(t *testing.T) {
	b := testutil.BoardFromDiagram(t, chess.White,
		"....r..k",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....N...",
		"....K...",
	)

	testutil.AssertEqual(t, b.AttemptMove(testutil.Sq(t, "e2"), testutil.Sq(t, "f4")), engine.Invalid)

	p, ok := b.PieceAt(testutil.Sq(t, "e2"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p.Kind, chess.Knight)
	testutil.AssertFalse(t, p.HasMoved, "rolled back piece must keep its original flag")
	testutil.AssertEqual(t, p.Pos, testutil.Sq(t, "e2"))
}

func TestMoveResultString(t *testing.T) {
	tests := []struct {
		result engine.MoveResult
		want   string
	}{
		{engine.Invalid, "Invalid"},
		{engine.Success, "Success"},
		{engine.Check, "Check"},
		{engine.Checkmate, "Checkmate"},
		{engine.Stalemate, "Stalemate"},
		{engine.MoveResult(42), "Unknown"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.result.String(), tt.want)
	}
	testutil.AssertFalse(t, engine.Invalid.Committed())
	testutil.AssertTrue(t, engine.Stalemate.Committed())
}
