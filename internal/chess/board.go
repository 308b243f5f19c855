package chess

// PendingPromotion records a pawn move to the last rank that is waiting
// for the promotion piece to be chosen.
type PendingPromotion struct {
	From Square
	To   Square
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The 64 squares, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The four castling rights. Once cleared a right is never restored
	// except by undoing the move that cleared it.
	Castling CastlingRights

	// The square a pawn may capture into en passant, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	MoveNumber uint

	// Set while a promotion choice is outstanding. The board itself is
	// not touched until the promotion is committed.
	Promotion *PendingPromotion

	// Committed moves, oldest first.
	History []Move
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
		EnPassant:  NoSquare,
	}
	b.Clear()
	return b
}

// Clear empties every square without touching the game state fields.
func (b *Board) Clear() {
	for sq := range b.Squares {
		b.Squares[sq] = Empty
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[NewSquare(file, 0)] = W(backRank[file])
		b.Squares[NewSquare(file, 1)] = W(Pawn)
		b.Squares[NewSquare(file, 6)] = B(Pawn)
		b.Squares[NewSquare(file, 7)] = B(backRank[file])
	}

	b.ToMove = White
	b.Castling = CastlingRights{true, true, true, true}
	b.EnPassant = NoSquare
	b.HalfmoveClock = 0
	b.MoveNumber = 1
	b.Promotion = nil
	b.History = nil
}

// Get returns the piece on sq, or Off when sq is not on the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return Off
	}
	return b.Squares[sq]
}

// Set places a piece on sq. Squares off the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.IsValid() {
		b.Squares[sq] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.Promotion != nil {
		p := *b.Promotion
		newBoard.Promotion = &p
	}
	if b.History != nil {
		newBoard.History = append([]Move(nil), b.History...)
	}
	return newBoard
}

// MovePair represents a source-destination square pair for move generation.
// Promotion is the piece type a pawn promotes to, or Empty.
type MovePair struct {
	From      Square
	To        Square
	Promotion Piece
}
