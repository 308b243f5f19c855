// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece built with
// MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Not a square on the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColoured reports whether p is an actual coloured piece rather than
// Empty or Off.
func IsColoured(p Piece) bool {
	if p == Empty || p == Off {
		return false
	}
	t := ExtractPiece(p)
	return t >= Pawn && t <= King
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is a board index: 0 = a1, 7 = h1, 56 = a8, 63 = h8.
type Square int

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s >= 0 && s < NumSquares
}

// Rank returns the zero-based rank of the square.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the zero-based file of the square.
func (s Square) File() int {
	return int(s) % BoardSize
}

// String returns the algebraic name of the square, e.g. "e4", or "-".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	return NewSquare(int(file-'a'), int(rank-'1')), nil
}

// CastleSide distinguishes the two castling directions.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// Indices into CastlingRights.
const (
	WhiteKingside = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// CastlingRights holds the four independent castling flags in the order
// White kingside, White queenside, Black kingside, Black queenside.
type CastlingRights [4]bool

// CastlingIndex returns the CastlingRights index for colour and side.
func CastlingIndex(colour Colour, side CastleSide) int {
	if colour == White {
		if side == Kingside {
			return WhiteKingside
		}
		return WhiteQueenside
	}
	if side == Kingside {
		return BlackKingside
	}
	return BlackQueenside
}

// Has reports whether colour may still castle on side.
func (c CastlingRights) Has(colour Colour, side CastleSide) bool {
	return c[CastlingIndex(colour, side)]
}

// Any reports whether any castling right remains.
func (c CastlingRights) Any() bool {
	return c[0] || c[1] || c[2] || c[3]
}

// Outcome is the status code returned when a move is attempted.
type Outcome int

const (
	Rejected Outcome = iota
	Applied
	PromotionPending
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case PromotionPending:
		return "promotion pending"
	default:
		return "rejected"
	}
}

// Result is the state of the game as a whole.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN style result marker.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}
