// Package engine provides chess move generation, validation and board
// manipulation.
package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// castlingLetters lists the castling field letters in FEN order, indexed
// like chess.CastlingRights.
var castlingLetters = [4]byte{'K', 'Q', 'k', 'q'}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// fenError builds a FENError wrapping ErrInvalidFEN.
func fenError(field, value, reason string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value, Reason: reason}
}

// NewBoardFromFEN creates a board from a six-field FEN string. Malformed
// input is rejected as a whole: no partially parsed board is returned.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fenError("", fen, "expected 6 space-separated fields")
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("placement", positions, "expected 8 ranks")
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		lastWasDigit := false
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				if lastWasDigit {
					return fenError("placement", rankText, "consecutive digits")
				}
				file += int(c - '0')
				lastWasDigit = true
			default:
				piece := ConvertFENCharToPiece(c)
				if piece == chess.Empty {
					return fenError("placement", string(c), "invalid piece character")
				}
				if file >= chess.BoardSize {
					return fenError("placement", rankText, "rank overflows 8 files")
				}
				colour := chess.White
				if unicode.IsLower(rune(c)) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.MakeColouredPiece(colour, piece))
				file++
				lastWasDigit = false
			}
		}
		if file != chess.BoardSize {
			return fenError("placement", rankText, "rank does not cover 8 files")
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError("side to move", field, "expected w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters must
// appear in KQkq order without repeats so that formatting round-trips.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}
	if field == "" {
		return fenError("castling", field, "empty field")
	}

	next := 0
	for i := 0; i < len(field); i++ {
		found := false
		for ; next < len(castlingLetters); next++ {
			if castlingLetters[next] == field[i] {
				board.Castling[next] = true
				next++
				found = true
				break
			}
		}
		if !found {
			return fenError("castling", field, "expected an ordered subset of KQkq")
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError("en passant", field, "invalid square")
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return fenError("en passant", field, "target must be on rank 3 or 6")
	}
	board.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	h, err := parseCount(halfmove)
	if err != nil {
		return fenError("halfmove clock", halfmove, err.Error())
	}
	f, err := parseCount(fullmove)
	if err != nil {
		return fenError("fullmove number", fullmove, err.Error())
	}
	if f < 1 {
		return fenError("fullmove number", fullmove, "must be at least 1")
	}
	board.HalfmoveClock = h
	board.MoveNumber = f
	return nil
}

// parseCount parses a non-negative decimal integer written without sign
// or leading zeros.
func parseCount(text string) (uint, error) {
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "not a non-negative integer")
	}
	if strconv.FormatUint(n, 10) != text {
		return 0, errors.Wrap(errors.ErrInvalidFEN, "non-canonical integer")
	}
	return uint(n), nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.MoveNumber), 10))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[chess.NewSquare(file, rank)]
			if !chess.IsColoured(piece) {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if !board.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	for i, allowed := range board.Castling {
		if allowed {
			sb.WriteByte(castlingLetters[i])
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	sb.WriteString(board.EnPassant.String())
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
