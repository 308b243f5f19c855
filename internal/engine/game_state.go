package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsFiftyMoveDraw returns true once 100 half-moves have passed without a
// pawn move or capture.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// IsGameOver returns true if the side to move is checkmated or
// stalemated, or the fifty-move rule applies.
func IsGameOver(board *chess.Board) bool {
	if IsFiftyMoveDraw(board) {
		return true
	}
	return !HasLegalMoves(board, board.ToMove)
}

// GetResult derives the game result. Checkmate takes precedence over the
// fifty-move draw.
func GetResult(board *chess.Board) chess.Result {
	if IsCheckmate(board, chess.White) {
		return chess.BlackWins
	}
	if IsCheckmate(board, chess.Black) {
		return chess.WhiteWins
	}
	if IsStalemate(board, board.ToMove) {
		return chess.Draw
	}
	if IsFiftyMoveDraw(board) {
		return chess.Draw
	}
	return chess.Ongoing
}
