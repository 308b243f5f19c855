package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnStartRank returns the rank pawns of colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// promotionRank returns the rank on which pawns of colour promote.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// isPromotionMove reports whether moving piece to sq is a pawn promotion.
func isPromotionMove(piece chess.Piece, to chess.Square) bool {
	if chess.ExtractPiece(piece) != chess.Pawn {
		return false
	}
	return to.Rank() == promotionRank(chess.ExtractColour(piece))
}

// enPassantVictim returns the square of the pawn captured when a pawn of
// colour moves onto the en passant target.
func enPassantVictim(target chess.Square, colour chess.Colour) chess.Square {
	return chess.NewSquare(target.File(), target.Rank()-chess.ColourOffset(colour))
}

// isEnPassantCapture reports whether a pawn of colour moving from -> to
// is an en passant capture on the current board.
func isEnPassantCapture(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if board.EnPassant == chess.NoSquare || to != board.EnPassant {
		return false
	}
	if from.File() == to.File() {
		return false
	}
	victim := board.Get(enPassantVictim(to, colour))
	return victim == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
}

// addPawnMoves appends the pseudo-legal destinations of the pawn on from.
func addPawnMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Square) []chess.Square {
	dir := chess.ColourOffset(colour)

	// Forward move
	if to, ok := offset(from, 0, dir); ok && board.Squares[to] == chess.Empty {
		moves = append(moves, to)
		// Double push from starting rank
		if from.Rank() == pawnStartRank(colour) {
			if to2, ok := offset(from, 0, 2*dir); ok && board.Squares[to2] == chess.Empty {
				moves = append(moves, to2)
			}
		}
	}

	// Captures, including en passant
	for _, df := range []int{-1, 1} {
		to, ok := offset(from, df, dir)
		if !ok {
			continue
		}
		target := board.Squares[to]
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = append(moves, to)
		} else if target == chess.Empty && isEnPassantCapture(board, from, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}
