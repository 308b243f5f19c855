// Package output provides text and JSON rendering of game state and
// analysis results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// DefaultLineLength is the wrap column for move lists.
const DefaultLineLength = 80

// GameStatus summarises a live game for display.
type GameStatus string

const (
	StatusPlaying   GameStatus = "playing"
	StatusCheck     GameStatus = "check"
	StatusPromotion GameStatus = "promotion pending"
	StatusCheckmate GameStatus = "checkmate"
	StatusStalemate GameStatus = "stalemate"
	StatusFiftyMove GameStatus = "fifty-move draw"
)

// StateStatus classifies the current state of e.
func StateStatus(e *engine.Engine) GameStatus {
	if _, ok := e.PromotionPending(); ok {
		return StatusPromotion
	}
	turn := e.Turn()
	switch {
	case e.IsCheckmate(turn):
		return StatusCheckmate
	case e.IsStalemate(turn):
		return StatusStalemate
	case e.IsGameOver():
		return StatusFiftyMove
	case e.IsCheck(turn):
		return StatusCheck
	}
	return StatusPlaying
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputState outputs the state of a game in the configured format.
func OutputState(e *engine.Engine, cfg *config.Config) error {
	if cfg.Output.JSONFormat {
		return OutputStateJSON(e, cfg)
	}
	w := cfg.OutputFile

	if cfg.Output.ShowBoard {
		WriteBoard(w, e.Board())
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "FEN: %s\n", e.FEN())
	fmt.Fprintf(w, "%s to move, %s", e.Turn(), StateStatus(e))
	if result := e.Result(); result != chess.Ongoing {
		fmt.Fprintf(w, " (%s)", result)
	}
	fmt.Fprintln(w)
	if pending, ok := e.PromotionPending(); ok {
		fmt.Fprintf(w, "Promotion pending: %s%s, choose q, r, b or n\n", pending.From, pending.To)
	}

	if moves := e.History(); len(moves) > 0 {
		fmt.Fprint(w, "Moves: ")
		OutputHistory(w, e.StartFEN(), moves)
	}
	if cfg.Output.ShowMoves {
		fmt.Fprint(w, "Legal: ")
		OutputLegalMoves(w, e.AllPossibleMoves(e.Turn()))
	}
	return nil
}

// OutputHistory writes the moves with move numbers, starting from the
// position described by startFEN.
func OutputHistory(w io.Writer, startFEN string, moves []chess.Move) {
	ow := NewOutputWriter(w, DefaultLineLength)

	moveNum := uint(1)
	if board, err := engine.NewBoardFromFEN(startFEN); err == nil {
		moveNum = board.MoveNumber
	}

	for i := range moves {
		isWhite := moves[i].Mover() == chess.White
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(moves[i].UCI())
		if !isWhite {
			moveNum++
		}
	}
	ow.NewLine()
}

// OutputLegalMoves writes the moves in UCI notation, wrapped.
func OutputLegalMoves(w io.Writer, moves []chess.MovePair) {
	ow := NewOutputWriter(w, DefaultLineLength)
	if len(moves) == 0 {
		ow.Write("(none)")
	}
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}

// WriteBoard writes a diagram of the board, White at the bottom.
func WriteBoard(w io.Writer, board *chess.Board) {
	for i, row := range boardRows(board) {
		fmt.Fprintf(w, "%d  %s\n", chess.BoardSize-i, spaced(row))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a b c d e f g h")
}

// boardRows returns the board as eight rows of FEN letters from rank 8
// down, with '.' for an empty square.
func boardRows(board *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		row := make([]byte, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if chess.IsColoured(piece) {
				row[file] = engine.ColouredPieceToSANLetter(piece)
			} else {
				row[file] = '.'
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}

// spaced separates the characters of s with single spaces.
func spaced(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// OutputResult writes one analysed position as a line of text.
func OutputResult(w io.Writer, r worker.ProcessResult, showMoves bool) {
	label := r.Source
	if label == "" {
		label = fmt.Sprintf("#%d", r.Index+1)
	}

	switch r.Status {
	case worker.StatusInvalid:
		fmt.Fprintf(w, "%s: invalid: %v\n", label, r.Err)
		return
	case worker.StatusDuplicate:
		fmt.Fprintf(w, "%s: duplicate of %s\n", label, r.DuplicateOf)
		return
	}

	fmt.Fprintf(w, "%s: %s, %s to move, %d legal moves", label, r.Status, r.Turn, len(r.LegalMoves))
	if r.InCheck && r.Status == worker.StatusOngoing {
		fmt.Fprint(w, ", in check")
	}
	if r.Result != chess.Ongoing {
		fmt.Fprintf(w, ", %s", r.Result)
	}
	if r.Perft > 0 {
		fmt.Fprintf(w, ", perft %d", r.Perft)
	}
	fmt.Fprintln(w)
	if showMoves && len(r.LegalMoves) > 0 {
		ow := NewOutputWriter(w, DefaultLineLength)
		for _, m := range r.LegalMoves {
			ow.Write(m)
		}
		ow.NewLine()
	}
}
