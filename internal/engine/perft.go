package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth
// from the current position. It is used to validate move generation
// against published node counts. The board is left unchanged.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := AllLegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		move := makeMove(board, m.From, m.To, m.Promotion)
		nodes += Perft(board, depth-1)
		unmakeMove(board, move)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move
// in UCI notation.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range AllLegalMoves(board, board.ToMove) {
		move := makeMove(board, m.From, m.To, m.Promotion)
		result[m.String()] = Perft(board, depth-1)
		unmakeMove(board, move)
	}
	return result
}
