package chess

import "strings"

// Move is the record of one committed half-move. It carries everything
// needed to undo the move exactly, including the state that cannot be
// recomputed from the position after the move.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The coloured piece that moved (the pawn, for a promotion).
	Piece Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// this is the pawn removed from behind the destination.
	CapturedPiece Piece

	// The coloured piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	IsCastling  bool
	IsEnPassant bool

	// State before the move.
	PrevEnPassant     Square
	PrevHalfmoveClock uint
	PrevCastling      CastlingRights
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return IsColoured(m.CapturedPiece) || m.IsEnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return IsColoured(m.PromotedPiece)
}

// Mover returns the colour that made the move.
func (m *Move) Mover() Colour {
	return ExtractColour(m.Piece)
}

// UCI returns the move in long algebraic (UCI) notation, e.g. "e7e8q".
func (m *Move) UCI() string {
	var promo Piece = Empty
	if m.IsPromotion() {
		promo = ExtractPiece(m.PromotedPiece)
	}
	return MovePair{From: m.From, To: m.To, Promotion: promo}.String()
}

// String returns the pair in UCI notation.
func (p MovePair) String() string {
	var sb strings.Builder
	sb.WriteString(p.From.String())
	sb.WriteString(p.To.String())
	if p.Promotion != Empty && p.Promotion != Off {
		sb.WriteByte(p.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// PromotionPieces are the piece types a pawn may promote to, in the
// order they are generated.
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// PromotionPieceFromLetter maps a promotion letter (either case) to a
// piece type. Unknown or empty input yields Queen.
func PromotionPieceFromLetter(text string) Piece {
	if text == "" {
		return Queen
	}
	switch text[0] {
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return Queen
	}
}
