package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Engine owns the state of one game and exposes the rules as plain
// synchronous calls. It is not safe for concurrent use; the caller owns
// the sequencing of moves.
//
// A pawn move to the last rank does not change the board when it is
// attempted. It is held as pending until CommitPromotion, and only then
// is the move applied, the turn switched and the history appended. While
// a promotion is pending Turn still reports the mover.
type Engine struct {
	board    *chess.Board
	startFEN string
}

// PossibleMove is a legal move together with the position it leads to.
type PossibleMove struct {
	chess.MovePair
	FEN string
}

// New creates an engine set up with the standard starting position.
func New() *Engine {
	return &Engine{board: NewInitialBoard(), startFEN: InitialFEN}
}

// NewFromFEN creates an engine from a FEN string.
func NewFromFEN(fen string) (*Engine, error) {
	e := New()
	if err := e.SetupBoard(fen); err != nil {
		return nil, err
	}
	return e, nil
}

// SetupBoard replaces the game with the position described by fen. An
// empty string selects the starting position. On error the current game
// is left untouched.
func (e *Engine) SetupBoard(fen string) error {
	if fen == "" {
		e.board = NewInitialBoard()
		e.startFEN = InitialFEN
		return nil
	}
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	e.board = board
	e.startFEN = BoardToFEN(board)
	return nil
}

// StartFEN returns the position the move history starts from.
func (e *Engine) StartFEN() string {
	return e.startFEN
}

// FEN returns the current position as a FEN string.
func (e *Engine) FEN() string {
	return BoardToFEN(e.board)
}

// Board returns a copy of the current board.
func (e *Engine) Board() *chess.Board {
	return e.board.Copy()
}

// Turn returns the side to move.
func (e *Engine) Turn() chess.Colour {
	return e.board.ToMove
}

// PieceOnSquare returns the coloured piece on sq, Empty, or Off when sq is
// not a board square.
func (e *Engine) PieceOnSquare(sq chess.Square) chess.Piece {
	return e.board.Get(sq)
}

// SetPieceOnSquare places piece (a coloured piece or Empty) on sq for
// position setup. Editing the board clears the move history and any
// pending promotion, since neither can be undone across the edit.
func (e *Engine) SetPieceOnSquare(sq chess.Square, piece chess.Piece) bool {
	if !sq.IsValid() || (piece != chess.Empty && !chess.IsColoured(piece)) {
		return false
	}
	e.board.Set(sq, piece)
	e.board.History = nil
	e.board.Promotion = nil
	e.startFEN = BoardToFEN(e.board)
	return true
}

// PromotionPending reports the outstanding promotion, if any.
func (e *Engine) PromotionPending() (chess.PendingPromotion, bool) {
	if e.board.Promotion == nil {
		return chess.PendingPromotion{}, false
	}
	return *e.board.Promotion, true
}

// Move attempts to play from -> to for the side to move. A pawn reaching
// the last rank returns chess.PromotionPending and waits for
// CommitPromotion. Rejections carry the reason as an error.
func (e *Engine) Move(from, to chess.Square) (chess.Outcome, error) {
	if e.board.Promotion != nil {
		return chess.Rejected, e.moveError(from, to, errors.ErrPromotionPending)
	}
	if !from.IsValid() || !to.IsValid() {
		return chess.Rejected, e.moveError(from, to, errors.ErrInvalidSquare)
	}

	piece := e.board.Squares[from]
	if !chess.IsColoured(piece) {
		return chess.Rejected, e.moveError(from, to, fmt.Errorf("no piece on %v: %w", from, errors.ErrIllegalMove))
	}
	if chess.ExtractColour(piece) != e.board.ToMove {
		return chess.Rejected, e.moveError(from, to, fmt.Errorf("%v to move: %w", e.board.ToMove, errors.ErrIllegalMove))
	}
	if !IsLegalMove(e.board, from, to) {
		return chess.Rejected, e.moveError(from, to, errors.ErrIllegalMove)
	}

	if isPromotionMove(piece, to) {
		e.board.Promotion = &chess.PendingPromotion{From: from, To: to}
		return chess.PromotionPending, nil
	}

	commitMove(e.board, from, to, chess.Empty)
	return chess.Applied, nil
}

// moveError wraps err with the move and position context.
func (e *Engine) moveError(from, to chess.Square, err error) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   len(e.board.History) + 1,
		MoveText: from.String() + to.String(),
		FEN:      BoardToFEN(e.board),
	}
}

// AttemptMove is Move without the error: it returns the status code only.
func (e *Engine) AttemptMove(from, to chess.Square) chess.Outcome {
	outcome, _ := e.Move(from, to)
	return outcome
}

// CommitPromotion completes a pending promotion with the piece named by
// letter (q, r, b or n in either case). Anything else promotes to a queen.
// It returns false when no promotion is pending.
func (e *Engine) CommitPromotion(letter string) bool {
	pending := e.board.Promotion
	if pending == nil {
		return false
	}
	e.board.Promotion = nil
	commitMove(e.board, pending.From, pending.To, chess.PromotionPieceFromLetter(letter))
	return true
}

// Revert undoes the last committed move. A pending promotion is cancelled
// first; since it never touched the board, cancelling it counts as the
// revert. It returns false when there is nothing to undo.
func (e *Engine) Revert() bool {
	if e.board.Promotion != nil {
		e.board.Promotion = nil
		return true
	}
	return revertMove(e.board)
}

// MakeMove plays a legal move for the side to move immediately, promoting
// to a queen without a pending step. It is meant for automated players.
func (e *Engine) MakeMove(from, to chess.Square) bool {
	outcome, err := e.Move(from, to)
	if err != nil {
		return false
	}
	if outcome == chess.PromotionPending {
		return e.CommitPromotion("q")
	}
	return true
}

// ApplyUCI plays a move given in UCI notation, including the promotion
// suffix when present. A promotion without a suffix promotes to a queen.
func (e *Engine) ApplyUCI(text string) error {
	pair, err := ParseUCIMove(text)
	if err != nil {
		return err
	}
	piece := e.board.Get(pair.From)
	if pair.Promotion != chess.Empty && !isPromotionMove(piece, pair.To) {
		return e.moveError(pair.From, pair.To, fmt.Errorf("%s is not a promotion: %w", text, errors.ErrIllegalMove))
	}

	outcome, err := e.Move(pair.From, pair.To)
	if err != nil {
		return err
	}
	if outcome == chess.PromotionPending {
		letter := "q"
		if pair.Promotion != chess.Empty {
			letter = string(pair.Promotion.Letter())
		}
		e.CommitPromotion(letter)
	}
	return nil
}

// LegalMovesForPiece returns the legal destinations of the piece on sq.
func (e *Engine) LegalMovesForPiece(sq chess.Square) []chess.Square {
	if !sq.IsValid() {
		return nil
	}
	return LegalMovesForPiece(e.board, sq)
}

// AllPossibleMoves returns every legal move for colour.
func (e *Engine) AllPossibleMoves(colour chess.Colour) []chess.MovePair {
	return AllLegalMoves(e.board, colour)
}

// AllPossibleMovesWithSnapshots returns every legal move for colour along
// with the FEN of the resulting position.
func (e *Engine) AllPossibleMovesWithSnapshots(colour chess.Colour) []PossibleMove {
	pairs := AllLegalMoves(e.board, colour)
	result := make([]PossibleMove, 0, len(pairs))
	for _, p := range pairs {
		toMove := e.board.ToMove
		move := makeMove(e.board, p.From, p.To, p.Promotion)
		result = append(result, PossibleMove{MovePair: p, FEN: BoardToFEN(e.board)})
		unmakeMove(e.board, move)
		e.board.ToMove = toMove
	}
	return result
}

// IsCheck returns true if colour's king is attacked.
func (e *Engine) IsCheck(colour chess.Colour) bool {
	return IsInCheck(e.board, colour)
}

// IsSquareAttacked returns true if sq is attacked by byColour.
func (e *Engine) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	return IsSquareAttacked(e.board, sq, byColour)
}

// IsCheckmate returns true if colour is checkmated.
func (e *Engine) IsCheckmate(colour chess.Colour) bool {
	return IsCheckmate(e.board, colour)
}

// IsStalemate returns true if colour is stalemated.
func (e *Engine) IsStalemate(colour chess.Colour) bool {
	return IsStalemate(e.board, colour)
}

// IsGameOver returns true if the game has ended.
func (e *Engine) IsGameOver() bool {
	return IsGameOver(e.board)
}

// Result returns the result of the game so far.
func (e *Engine) Result() chess.Result {
	return GetResult(e.board)
}

// Moves returns the committed moves in UCI notation.
func (e *Engine) Moves() []string {
	return MoveHistoryUCI(e.board)
}

// History returns a copy of the committed move records.
func (e *Engine) History() []chess.Move {
	return append([]chess.Move(nil), e.board.History...)
}

// Perft counts leaf nodes of the legal move tree to depth.
func (e *Engine) Perft(depth int) uint64 {
	return Perft(e.board, depth)
}
