package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// offset returns the square df files and dr ranks away from sq. The
// second result is false when the step leaves the board. Working in file
// and rank rather than flat index arithmetic keeps a step off the a or h
// file from wrapping onto the neighbouring rank.
func offset(sq chess.Square, df, dr int) (chess.Square, bool) {
	file := sq.File() + df
	rank := sq.Rank() + dr
	if file < 0 || file >= chess.BoardSize || rank < 0 || rank >= chess.BoardSize {
		return chess.NoSquare, false
	}
	return chess.NewSquare(file, rank), true
}

// Offsets for the non-sliding pieces and the sliding rays, as (file, rank).
var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)
