package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

func TestMakeMove_PawnMoves(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		from, to      string
		wantFEN       string
		wantEnPassant string
	}{
		{
			name:          "double push sets en passant target",
			fen:           InitialFEN,
			from:          "e2",
			to:            "e4",
			wantFEN:       "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantEnPassant: "e3",
		},
		{
			name:          "single push clears en passant target",
			fen:           "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			from:          "d7",
			to:            "d6",
			wantFEN:       "rnbqkbnr/ppp1pppp/3p4/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
			wantEnPassant: "-",
		},
		{
			name:          "black double push",
			fen:           "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			from:          "c7",
			to:            "c5",
			wantFEN:       "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			wantEnPassant: "c6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			makeMove(board, testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to), chess.Empty)

			if got := BoardToFEN(board); got != tt.wantFEN {
				t.Errorf("FEN = %q, want %q", got, tt.wantFEN)
			}
			if got := board.EnPassant.String(); got != tt.wantEnPassant {
				t.Errorf("EnPassant = %s, want %s", got, tt.wantEnPassant)
			}
		})
	}
}

func TestMakeMove_Castling(t *testing.T) {
	const fen = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
	tests := []struct {
		name     string
		fen      string
		from, to string
		wantFEN  string
	}{
		{
			name:    "white kingside",
			fen:     fen,
			from:    "e1",
			to:      "g1",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "white queenside",
			fen:     fen,
			from:    "e1",
			to:      "c1",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/2KR3R b kq - 1 1",
		},
		{
			name:    "black kingside",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			from:    "e8",
			to:      "g8",
			wantFEN: "r4rk1/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name:    "black queenside",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			from:    "e8",
			to:      "c8",
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			move := makeMove(board, testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to), chess.Empty)

			if !move.IsCastling {
				t.Error("IsCastling = false, want true")
			}
			if got := BoardToFEN(board); got != tt.wantFEN {
				t.Errorf("FEN = %q, want %q", got, tt.wantFEN)
			}
		})
	}
}

func TestMakeMove_CastlingRights(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		from, to     string
		wantCastling string
	}{
		{"king move clears both", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "f1", "kq"},
		{"h-rook move clears kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "h1", "h5", "Qkq"},
		{"a-rook move clears queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1", "a5", "Kkq"},
		{"capturing a rook clears its right", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1", "a8", "Kk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			makeMove(board, testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to), chess.Empty)

			if got := strings.Fields(BoardToFEN(board))[2]; got != tt.wantCastling {
				t.Errorf("castling = %q, want %q", got, tt.wantCastling)
			}
		})
	}
}

func TestMakeMove_EnPassant(t *testing.T) {
	board := mustBoard(t, "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	move := makeMove(board, testutil.MustSquare(t, "e5"), testutil.MustSquare(t, "d6"), chess.Empty)

	if !move.IsEnPassant || !move.IsCapture() {
		t.Fatalf("move = %+v, want en passant capture", move)
	}
	if move.CapturedPiece != chess.B(chess.Pawn) {
		t.Errorf("CapturedPiece = %v, want black pawn", move.CapturedPiece)
	}
	if got := board.Get(testutil.MustSquare(t, "d5")); got != chess.Empty {
		t.Errorf("d5 = %v, want Empty", got)
	}
	if got := board.Get(testutil.MustSquare(t, "d6")); got != chess.W(chess.Pawn) {
		t.Errorf("d6 = %v, want white pawn", got)
	}
	if board.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", board.HalfmoveClock)
	}
}

func TestMakeMove_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		promotion chess.Piece
		want      chess.Piece
	}{
		{"default is queen", "8/4P3/8/8/8/8/8/k6K w - - 0 1", "e7", "e8", chess.Empty, chess.W(chess.Queen)},
		{"underpromote to knight", "8/4P3/8/8/8/8/8/k6K w - - 0 1", "e7", "e8", chess.Knight, chess.W(chess.Knight)},
		{"capture promotion to rook", "3r4/4P3/8/8/8/8/8/k6K w - - 0 1", "e7", "d8", chess.Rook, chess.W(chess.Rook)},
		{"black promotes to bishop", "K6k/8/8/8/8/8/3p4/8 b - - 0 1", "d2", "d1", chess.Bishop, chess.B(chess.Bishop)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			to := testutil.MustSquare(t, tt.to)
			move := makeMove(board, testutil.MustSquare(t, tt.from), to, tt.promotion)

			if !move.IsPromotion() {
				t.Error("IsPromotion() = false, want true")
			}
			if got := board.Get(to); got != tt.want {
				t.Errorf("promoted piece = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMakeMove_Clocks(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/4P3/4K1N1 w - - 7 12")

	makeMove(board, testutil.MustSquare(t, "g1"), testutil.MustSquare(t, "f3"), chess.Empty)
	testutil.AssertEqual(t, board.HalfmoveClock, uint(8))
	testutil.AssertEqual(t, board.MoveNumber, uint(12))

	makeMove(board, testutil.MustSquare(t, "e8"), testutil.MustSquare(t, "d8"), chess.Empty)
	testutil.AssertEqual(t, board.HalfmoveClock, uint(9))
	testutil.AssertEqual(t, board.MoveNumber, uint(13))

	makeMove(board, testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "e3"), chess.Empty)
	testutil.AssertEqual(t, board.HalfmoveClock, uint(0), "pawn move resets the clock")
}

func TestUnmakeMove_RestoresBoard(t *testing.T) {
	positions := []string{
		InitialFEN,
		testutil.KiwipeteFEN,
		testutil.Position3FEN,
		testutil.Position4FEN,
		"rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}

	for _, fen := range positions {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			before := board.Copy()
			for _, m := range AllLegalMoves(board, board.ToMove) {
				move := makeMove(board, m.From, m.To, m.Promotion)
				unmakeMove(board, move)
				testutil.AssertEqual(t, board, before, "after %s", m)
			}
		})
	}
}

func TestRevertMove(t *testing.T) {
	board := NewInitialBoard()
	if revertMove(board) {
		t.Fatal("revertMove() on empty history = true, want false")
	}

	commitMove(board, testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "e4"), chess.Empty)
	commitMove(board, testutil.MustSquare(t, "e7"), testutil.MustSquare(t, "e5"), chess.Empty)
	testutil.AssertEqual(t, MoveHistoryUCI(board), []string{"e2e4", "e7e5"})

	if !revertMove(board) || !revertMove(board) {
		t.Fatal("revertMove() = false, want true")
	}
	if got := BoardToFEN(board); got != InitialFEN {
		t.Errorf("FEN after reverting = %q, want %q", got, InitialFEN)
	}
	if len(board.History) != 0 {
		t.Errorf("len(History) = %d, want 0", len(board.History))
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := abs(tt.input); got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{5, 1},
		{-5, -1},
	}
	for _, tt := range tests {
		if got := sign(tt.input); got != tt.want {
			t.Errorf("sign(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
