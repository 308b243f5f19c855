package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ParseUCIMove parses a move in long algebraic (UCI) notation such as
// "e2e4" or "e7e8q". The promotion piece is Empty when no suffix is given.
func ParseUCIMove(text string) (chess.MovePair, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.MovePair{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.MovePair{}, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidSquare)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.MovePair{}, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidSquare)
	}

	pair := chess.MovePair{From: from, To: to, Promotion: chess.Empty}
	if len(text) == 5 {
		switch text[4] {
		case 'q', 'r', 'b', 'n', 'Q', 'R', 'B', 'N':
			pair.Promotion = chess.PromotionPieceFromLetter(text[4:])
		default:
			return chess.MovePair{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrIllegalMove)
		}
	}
	return pair, nil
}

// MoveHistoryUCI returns the committed moves of the board in UCI notation.
func MoveHistoryUCI(board *chess.Board) []string {
	moves := make([]string, 0, len(board.History))
	for i := range board.History {
		moves = append(moves, board.History[i].UCI())
	}
	return moves
}

// SquareToAlgebraic converts a square index to its name, e.g. 0 -> "a1".
// Invalid squares yield "-".
func SquareToAlgebraic(sq chess.Square) string {
	return sq.String()
}

// AlgebraicToSquare converts a square name to its index, e.g. "e4" -> 28.
// Invalid names yield chess.NoSquare.
func AlgebraicToSquare(text string) chess.Square {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		return chess.NoSquare
	}
	return sq
}

// PosToCoords converts a square index to zero-based (rank, file).
func PosToCoords(sq chess.Square) (rank, file int) {
	return sq.Rank(), sq.File()
}

// CoordsToPos converts zero-based rank and file to a square index, or
// chess.NoSquare when either is off the board.
func CoordsToPos(rank, file int) chess.Square {
	if rank < 0 || rank >= chess.BoardSize || file < 0 || file >= chess.BoardSize {
		return chess.NoSquare
	}
	return chess.NewSquare(file, rank)
}
