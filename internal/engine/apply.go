package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// makeMove applies the move from -> to on the board and returns the record
// needed to undo it. The move is assumed to be at least pseudo-legal.
// promotion is the piece type a pawn reaching the last rank becomes;
// Empty selects a queen. The record is not appended to the history.
func makeMove(board *chess.Board, from, to chess.Square, promotion chess.Piece) chess.Move {
	piece := board.Squares[from]
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	move := chess.Move{
		From:              from,
		To:                to,
		Piece:             piece,
		CapturedPiece:     board.Squares[to],
		PromotedPiece:     chess.Empty,
		PrevEnPassant:     board.EnPassant,
		PrevHalfmoveClock: board.HalfmoveClock,
		PrevCastling:      board.Castling,
	}

	// Handle en passant capture
	if pieceType == chess.Pawn && isEnPassantCapture(board, from, to, colour) {
		victim := enPassantVictim(to, colour)
		move.IsEnPassant = true
		move.CapturedPiece = board.Squares[victim]
		board.Squares[victim] = chess.Empty
	}

	// Handle castling: the king moves two files and the rook jumps over it
	if pieceType == chess.King && abs(to.File()-from.File()) == 2 {
		side := chess.Kingside
		if to.File() < from.File() {
			side = chess.Queenside
		}
		rookFrom, rookTo := castlingRookSquares(colour, side)
		board.Squares[rookTo] = board.Squares[rookFrom]
		board.Squares[rookFrom] = chess.Empty
		move.IsCastling = true
	}

	// Move the piece
	board.Squares[from] = chess.Empty
	board.Squares[to] = piece

	// Handle promotion
	if isPromotionMove(piece, to) {
		if promotion == chess.Empty || promotion == chess.Off {
			promotion = chess.Queen
		}
		move.PromotedPiece = chess.MakeColouredPiece(colour, promotion)
		board.Squares[to] = move.PromotedPiece
	}

	// Set en passant square if double pawn push
	board.EnPassant = chess.NoSquare
	if pieceType == chess.Pawn && abs(to.Rank()-from.Rank()) == 2 {
		board.EnPassant = chess.NewSquare(from.File(), (from.Rank()+to.Rank())/2)
	}

	updateCastlingRights(board, piece, from, to)

	// Update halfmove clock
	if pieceType == chess.Pawn || move.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return move
}

// unmakeMove reverts a move made by makeMove, restoring the board to the
// exact state it had before.
func unmakeMove(board *chess.Board, move chess.Move) {
	colour := chess.ExtractColour(move.Piece)

	board.Squares[move.From] = move.Piece
	if move.IsEnPassant {
		board.Squares[move.To] = chess.Empty
		board.Squares[enPassantVictim(move.To, colour)] = move.CapturedPiece
	} else {
		board.Squares[move.To] = move.CapturedPiece
	}

	if move.IsCastling {
		side := chess.Kingside
		if move.To.File() < move.From.File() {
			side = chess.Queenside
		}
		rookFrom, rookTo := castlingRookSquares(colour, side)
		board.Squares[rookFrom] = board.Squares[rookTo]
		board.Squares[rookTo] = chess.Empty
	}

	board.EnPassant = move.PrevEnPassant
	board.HalfmoveClock = move.PrevHalfmoveClock
	board.Castling = move.PrevCastling
	if colour == chess.Black {
		board.MoveNumber--
	}
	board.ToMove = colour
}

// commitMove applies a move and appends its record to the history.
func commitMove(board *chess.Board, from, to chess.Square, promotion chess.Piece) chess.Move {
	move := makeMove(board, from, to, promotion)
	board.History = append(board.History, move)
	return move
}

// revertMove undoes the last committed move. It returns false when the
// history is empty.
func revertMove(board *chess.Board) bool {
	n := len(board.History)
	if n == 0 {
		return false
	}
	move := board.History[n-1]
	board.History = board.History[:n-1]
	unmakeMove(board, move)
	return true
}
