package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Files of the king and rooks involved in castling.
const (
	kingHomeFile      = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// homeRank returns the back rank of colour.
func homeRank(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return chess.BoardSize - 1
}

// castlingRookSquares returns the rook's start and end squares for a
// castling move by colour on side.
func castlingRookSquares(colour chess.Colour, side chess.CastleSide) (from, to chess.Square) {
	rank := homeRank(colour)
	if side == chess.Kingside {
		return chess.NewSquare(kingsideRookFile, rank), chess.NewSquare(5, rank)
	}
	return chess.NewSquare(queensideRookFile, rank), chess.NewSquare(3, rank)
}

// castlingKingTarget returns the king's destination for side.
func castlingKingTarget(colour chess.Colour, side chess.CastleSide) chess.Square {
	if side == chess.Kingside {
		return chess.NewSquare(6, homeRank(colour))
	}
	return chess.NewSquare(2, homeRank(colour))
}

// CanCastle reports whether colour may castle on side in the current
// position: the right is held, king and rook stand on their home squares,
// the squares between them are empty, and neither the king's square nor
// the square it passes over is attacked. Safety of the destination square
// is left to the legality filter.
func CanCastle(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	if !board.Castling.Has(colour, side) {
		return false
	}

	rank := homeRank(colour)
	kingSquare := chess.NewSquare(kingHomeFile, rank)
	if board.Squares[kingSquare] != chess.MakeColouredPiece(colour, chess.King) {
		return false
	}
	rookFrom, _ := castlingRookSquares(colour, side)
	if board.Squares[rookFrom] != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}

	// Squares between king and rook must be empty
	step := sign(rookFrom.File() - kingHomeFile)
	for file := kingHomeFile + step; file != rookFrom.File(); file += step {
		if board.Squares[chess.NewSquare(file, rank)] != chess.Empty {
			return false
		}
	}

	// No castling out of or through check
	opponent := colour.Opposite()
	if IsSquareAttacked(board, kingSquare, opponent) {
		return false
	}
	passThrough := chess.NewSquare(kingHomeFile+step, rank)
	return !IsSquareAttacked(board, passThrough, opponent)
}

// addCastlingMoves appends the castling destinations available to the
// king on from.
func addCastlingMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Square) []chess.Square {
	if from != chess.NewSquare(kingHomeFile, homeRank(colour)) {
		return moves
	}
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if CanCastle(board, colour, side) {
			moves = append(moves, castlingKingTarget(colour, side))
		}
	}
	return moves
}

// castlingRightForSquare maps a rook home square to its castling index.
var castlingRightForSquare = map[chess.Square]int{
	chess.NewSquare(queensideRookFile, 0): chess.WhiteQueenside,
	chess.NewSquare(kingsideRookFile, 0):  chess.WhiteKingside,
	chess.NewSquare(queensideRookFile, 7): chess.BlackQueenside,
	chess.NewSquare(kingsideRookFile, 7):  chess.BlackKingside,
}

// updateCastlingRights removes castling rights after a move: both rights
// of a side whose king moved, and the single right tied to a rook home
// square that a piece left or was captured on.
func updateCastlingRights(board *chess.Board, piece chess.Piece, from, to chess.Square) {
	if chess.ExtractPiece(piece) == chess.King {
		colour := chess.ExtractColour(piece)
		board.Castling[chess.CastlingIndex(colour, chess.Kingside)] = false
		board.Castling[chess.CastlingIndex(colour, chess.Queenside)] = false
	}
	if i, ok := castlingRightForSquare[from]; ok {
		board.Castling[i] = false
	}
	if i, ok := castlingRightForSquare[to]; ok {
		board.Castling[i] = false
	}
}
