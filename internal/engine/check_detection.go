package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is reported as not in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSquare, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSquare, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if board.Squares[sq] == king {
			return sq, true
		}
	}
	return chess.NoSquare, false
}

// IsSquareAttacked returns true if any piece of byColour could capture on
// sq. It does not depend on whose turn it is.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.IsValid() {
		return false
	}

	// Check pawn attacks: the two diagonal squares behind sq relative to
	// the attacker's direction of travel.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	behind := -chess.ColourOffset(byColour)
	for _, df := range []int{-1, 1} {
		if from, ok := offset(sq, df, behind); ok && board.Squares[from] == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		if from, ok := offset(sq, o[0], o[1]); ok && board.Squares[from] == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, o := range kingOffsets {
		if from, ok := offset(sq, o[0], o[1]); ok && board.Squares[from] == king {
			return true
		}
	}

	// Check sliding pieces (bishop, rook, queen)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	if rayAttacked(board, sq, diagonalDirs, bishop, queen) {
		return true
	}
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return rayAttacked(board, sq, straightDirs, rook, queen)
}

// rayAttacked walks each ray from sq and reports whether the first
// occupied square holds one of the two given attackers.
func rayAttacked(board *chess.Board, sq chess.Square, dirs [][2]int, attacker, queen chess.Piece) bool {
	for _, dir := range dirs {
		cur, ok := offset(sq, dir[0], dir[1])
		for ok {
			piece := board.Squares[cur]
			if piece != chess.Empty {
				if piece == attacker || piece == queen {
					return true
				}
				break // Blocked
			}
			cur, ok = offset(cur, dir[0], dir[1])
		}
	}
	return false
}
