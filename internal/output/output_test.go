package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func playMoves(t *testing.T, e *engine.Engine, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := e.ApplyUCI(m); err != nil {
			t.Fatalf("ApplyUCI(%s): %v", m, err)
		}
	}
}

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	WriteBoard(&buf, engine.NewInitialBoard())

	want := strings.Join([]string{
		"8  r n b q k b n r",
		"7  p p p p p p p p",
		"6  . . . . . . . .",
		"5  . . . . . . . .",
		"4  . . . . . . . .",
		"3  . . . . . . . .",
		"2  P P P P P P P P",
		"1  R N B Q K B N R",
		"",
		"   a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestStateStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want GameStatus
	}{
		{"start", testutil.StartFEN, StatusPlaying},
		{"quiet", "4k3/8/8/8/8/8/8/4KR2 b - - 0 1", StatusPlaying},
		{"in check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", StatusCheck},
		{"stalemate", testutil.StalemateFEN, StatusStalemate},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", StatusFiftyMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := engine.NewFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, StateStatus(e), tt.want)
		})
	}

	t.Run("checkmate", func(t *testing.T) {
		e := engine.New()
		playMoves(t, e, testutil.FoolsMate...)
		testutil.AssertEqual(t, StateStatus(e), StatusCheckmate)
	})

	t.Run("promotion", func(t *testing.T) {
		e, err := engine.NewFromFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
		testutil.AssertNoError(t, err)
		_, err = e.Move(testutil.MustSquare(t, "b7"), testutil.MustSquare(t, "b8"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, StateStatus(e), StatusPromotion)
	})
}

func TestOutputHistory(t *testing.T) {
	e := engine.New()
	playMoves(t, e, "e2e4", "e7e5", "g1f3")

	var buf bytes.Buffer
	OutputHistory(&buf, e.StartFEN(), e.History())
	testutil.AssertEqual(t, buf.String(), "1. e2e4 e7e5 2. g1f3\n")
}

func TestOutputHistoryBlackFirst(t *testing.T) {
	e, err := engine.NewFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertNoError(t, err)
	playMoves(t, e, "e7e5", "g1f3")

	var buf bytes.Buffer
	OutputHistory(&buf, e.StartFEN(), e.History())
	testutil.AssertEqual(t, buf.String(), "1... e7e5 2. g1f3\n")
}

func TestOutputWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"e2e4", "e7e5", "g1f3"} {
		ow.Write(s)
	}
	ow.NewLine()
	testutil.AssertEqual(t, buf.String(), "e2e4 e7e5\ng1f3\n")
}

func TestOutputLegalMovesNone(t *testing.T) {
	var buf bytes.Buffer
	OutputLegalMoves(&buf, nil)
	testutil.AssertEqual(t, buf.String(), "(none)\n")
}

func TestOutputStateText(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.SetOutput(&buf)
	cfg.Output.ShowBoard = false
	cfg.Output.ShowMoves = true

	e := engine.New()
	playMoves(t, e, testutil.FoolsMate...)
	testutil.AssertNoError(t, OutputState(e, cfg))

	out := buf.String()
	testutil.AssertContains(t, out, "FEN: rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	testutil.AssertContains(t, out, "White to move, checkmate (0-1)")
	testutil.AssertContains(t, out, "Moves: 1. f2f3 e7e5 2. g2g4 d8h4")
	testutil.AssertContains(t, out, "Legal: (none)")
	testutil.AssertFalse(t, strings.Contains(out, "a b c d e f g h"), "board hidden")
}

func TestOutputStatePromotion(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.SetOutput(&buf)

	e, err := engine.NewFromFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	e.Move(testutil.MustSquare(t, "b7"), testutil.MustSquare(t, "b8"))
	testutil.AssertNoError(t, OutputState(e, cfg))

	testutil.AssertContains(t, buf.String(), "Promotion pending: b7b8")
	testutil.AssertContains(t, buf.String(), "a b c d e f g h")
}

func TestOutputStateJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.SetOutput(&buf)
	cfg.Output.JSONFormat = true
	cfg.Output.ShowMoves = true

	e := engine.New()
	playMoves(t, e, "e2e4")
	testutil.AssertNoError(t, OutputState(e, cfg))

	var js JSONState
	if err := json.Unmarshal(buf.Bytes(), &js); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	testutil.AssertEqual(t, js.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, js.Turn, "black")
	testutil.AssertEqual(t, js.Status, string(StatusPlaying))
	testutil.AssertEqual(t, js.Result, "*")
	testutil.AssertEqual(t, js.Moves, []string{"e2e4"})
	testutil.AssertEqual(t, len(js.LegalMoves), 20)
	testutil.AssertEqual(t, len(js.Board), 8)
	testutil.AssertEqual(t, js.Board[4], "....P...")
	testutil.AssertEqual(t, js.StartFEN, "", "standard start omitted")
	testutil.AssertTrue(t, js.Promotion == nil)
}

func TestStateToJSONPromotion(t *testing.T) {
	e, err := engine.NewFromFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	e.Move(testutil.MustSquare(t, "b7"), testutil.MustSquare(t, "b8"))

	js := StateToJSON(e, nil)
	testutil.AssertEqual(t, js.StartFEN, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, js.Status, string(StatusPromotion))
	testutil.AssertEqual(t, js.Promotion, &JSONMove{UCI: "b7b8", From: "b7", To: "b8"})
	testutil.AssertTrue(t, js.Board == nil, "no options, no board")
}

func TestSnapshotsToJSON(t *testing.T) {
	e, err := engine.NewFromFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	snaps := SnapshotsToJSON(e)
	promotions := 0
	for _, s := range snaps {
		testutil.AssertTrue(t, s.FEN != "", "snapshot for %s has a FEN", s.UCI)
		if s.Promotion != "" {
			promotions++
		}
	}
	testutil.AssertEqual(t, promotions, 4)
	testutil.AssertEqual(t, e.FEN(), "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1", "snapshots leave the game untouched")
}
