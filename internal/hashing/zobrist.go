package hashing

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// numPieceKeys covers the six piece types in both colours.
const numPieceKeys = 12

var (
	zobristPiece     [numPieceKeys][chess.NumSquares]uint64
	zobristCastling  [4]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so that hashes are stable across runs and can be stored.
	rnd := rand.New(rand.NewSource(0x5EEDC4E5))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// pieceKey maps a coloured piece to its row in zobristPiece.
func pieceKey(p chess.Piece) int {
	return int(chess.ExtractPiece(p)-chess.Pawn)*2 + int(chess.ExtractColour(p))
}

// Zobrist returns the Zobrist hash of a position. Placement, side to move,
// castling rights and the en passant file all contribute; the clocks and
// the move history do not.
func Zobrist(board *chess.Board) uint64 {
	if board == nil {
		return 0
	}

	var key uint64
	for sq, p := range board.Squares {
		if chess.IsColoured(p) {
			key ^= zobristPiece[pieceKey(p)][sq]
		}
	}
	if board.ToMove == chess.Black {
		key ^= zobristSide
	}
	for i, allowed := range board.Castling {
		if allowed {
			key ^= zobristCastling[i]
		}
	}
	if board.EnPassant.IsValid() {
		key ^= zobristEnPassant[board.EnPassant.File()]
	}
	return key
}

// WeakHash hashes the piece placement only. It is independent of the
// Zobrist keys and serves as a second opinion when two positions share a
// Zobrist hash.
func WeakHash(board *chess.Board) uint64 {
	if board == nil {
		return 0
	}
	var buf [chess.NumSquares]byte
	for sq, p := range board.Squares {
		buf[sq] = byte(p)
	}
	return xxhash.Sum64(buf[:])
}
