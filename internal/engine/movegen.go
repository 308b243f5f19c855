package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoLegalMoves returns the destinations of the piece on from that
// respect movement geometry and occupancy, ignoring whether the mover's
// own king is left in check. Castling destinations are included only
// when CanCastle allows them.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if !chess.IsColoured(piece) {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var moves []chess.Square
	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		moves = addPawnMoves(board, from, colour, moves)
	case chess.Knight:
		moves = addStepMoves(board, from, colour, knightOffsets, moves)
	case chess.Bishop:
		moves = addSlidingMoves(board, from, colour, diagonalDirs, moves)
	case chess.Rook:
		moves = addSlidingMoves(board, from, colour, straightDirs, moves)
	case chess.Queen:
		moves = addSlidingMoves(board, from, colour, allSlidingDirs, moves)
	case chess.King:
		moves = addStepMoves(board, from, colour, kingOffsets, moves)
		moves = addCastlingMoves(board, from, colour, moves)
	}
	return moves
}

// addStepMoves appends the single-step destinations for knights and kings.
func addStepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Square) []chess.Square {
	for _, o := range offsets {
		to, ok := offset(from, o[0], o[1])
		if !ok {
			continue
		}
		target := board.Squares[to]
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// addSlidingMoves walks each ray from from, appending empty squares and
// the first enemy-occupied square.
func addSlidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Square) []chess.Square {
	for _, dir := range dirs {
		to, ok := offset(from, dir[0], dir[1])
		for ok {
			target := board.Squares[to]
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to, ok = offset(to, dir[0], dir[1])
		}
	}
	return moves
}

// LegalMovesForPiece returns the legal destinations of the piece on from.
// Each pseudo-legal move is tried on the board with the same make/unmake
// code used for real moves, so en passant removals and castling rook moves
// are accounted for; the board is restored before returning.
func LegalMovesForPiece(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if !chess.IsColoured(piece) {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var legal []chess.Square
	for _, to := range PseudoLegalMoves(board, from) {
		if leavesKingSafe(board, from, to, colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// leavesKingSafe tries the move and reports whether colour's king is out
// of check afterwards. The side to move is restored explicitly because
// colour need not be the side to move.
func leavesKingSafe(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	toMove := board.ToMove
	move := makeMove(board, from, to, chess.Queen)
	defer func() {
		unmakeMove(board, move)
		board.ToMove = toMove
	}()
	return !IsInCheck(board, colour)
}

// AllLegalMoves returns every legal move for colour. A pawn move to the
// last rank appears once per promotion piece.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.MovePair {
	var moves []chess.MovePair
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := board.Squares[from]
		if !chess.IsColoured(piece) || chess.ExtractColour(piece) != colour {
			continue
		}
		for _, to := range LegalMovesForPiece(board, from) {
			if isPromotionMove(piece, to) {
				for _, promo := range chess.PromotionPieces {
					moves = append(moves, chess.MovePair{From: from, To: to, Promotion: promo})
				}
				continue
			}
			moves = append(moves, chess.MovePair{From: from, To: to, Promotion: chess.Empty})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := board.Squares[from]
		if !chess.IsColoured(piece) || chess.ExtractColour(piece) != colour {
			continue
		}
		for _, to := range PseudoLegalMoves(board, from) {
			if leavesKingSafe(board, from, to, colour) {
				return true
			}
		}
	}
	return false
}

// IsLegalMove reports whether from -> to is a legal move for the piece on from.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range LegalMovesForPiece(board, from) {
		if sq == to {
			return true
		}
	}
	return false
}
