package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Well-known positions used across the test suites.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Kiwipete: castling, en passant, promotions and pins all at once.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// Rook and pawn endgame with en passant discovered checks.
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// Promotions and checks on both sides.
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// White to move, king a1, stalemated by black king a3 and queen b3.
	StalemateFEN = "8/8/8/8/8/kq6/8/K7 w - - 0 1"
)

// FoolsMate is the fastest checkmate, in UCI notation.
var FoolsMate = []string{"f2f3", "e7e5", "g2g4", "d8h4"}

// MustSquare parses an algebraic square name, failing the test on error.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// SquareNames converts squares to their algebraic names.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	return names
}

// StringLess orders strings for AssertSameElements.
func StringLess(a, b string) bool {
	return a < b
}
