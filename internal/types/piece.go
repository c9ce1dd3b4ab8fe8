/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

// PieceType identifies a kind of piece irrespective of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a colored piece token, or one of the two sentinels
// (NoPiece for an empty square, OutOfBounds for the mailbox border).
// Values 1..12 are dense and usable as an index into [12]-sized
// per-piece tables (piece lists, Zobrist keys, history, PST lookups)
// via Piece.Index().
type Piece int8

const (
	NoPiece Piece = iota
	WPawn
	WKnight
	WBishop
	WRook
	WQueen
	WKing
	BPawn
	BKnight
	BBishop
	BRook
	BQueen
	BKing
	OutOfBounds
)

// NumPieceTypes is the number of distinct colored piece tokens.
const NumPieceTypes = 12

// MakePiece builds a colored piece token from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	if c == White {
		return Piece(pt)
	}
	return Piece(int8(pt) + 6)
}

// Index returns the 0..11 dense index of a colored piece, for use with
// [12]-sized tables. Panics semantics are avoided; callers must not
// call Index on NoPiece/OutOfBounds.
func (p Piece) Index() int {
	return int(p) - 1
}

// Color returns the piece's color. Undefined for NoPiece/OutOfBounds.
func (p Piece) Color() Color {
	if p >= WPawn && p <= WKing {
		return White
	}
	return Black
}

// Type returns the piece's type, stripped of color.
func (p Piece) Type() PieceType {
	switch p {
	case WPawn, BPawn:
		return Pawn
	case WKnight, BKnight:
		return Knight
	case WBishop, BBishop:
		return Bishop
	case WRook, BRook:
		return Rook
	case WQueen, BQueen:
		return Queen
	case WKing, BKing:
		return King
	default:
		return NoPieceType
	}
}

// IsSliding reports whether the piece type moves along rays (bishop,
// rook, queen).
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// pieceChars is the FEN/algebraic token for each of the 12 piece
// values, indexed by Piece.Index().
var pieceChars = [NumPieceTypes]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Char returns the FEN character for the piece ('P'..'K', 'p'..'k').
func (p Piece) Char() byte {
	if p == NoPiece || p == OutOfBounds {
		return '.'
	}
	return pieceChars[p.Index()]
}

// PieceFromChar reverses Char, returning NoPiece if c is not a
// recognized piece letter.
func PieceFromChar(c byte) Piece {
	for i, pc := range pieceChars {
		if pc == c {
			return Piece(i + 1)
		}
	}
	return NoPiece
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "-"
	case OutOfBounds:
		return "X"
	default:
		return string(p.Char())
	}
}

// PieceValuePawns gives MVV-LVA piece values in pawns (spec.md §4.5),
// indexed by PieceType.
var PieceValuePawns = map[PieceType]float64{
	Pawn:   1,
	Knight: 3.2,
	Bishop: 3.3,
	Rook:   5,
	Queen:  9,
	King:   10,
}

// PhaseWeight gives the game-phase weight contributed by one piece of
// the given type (spec.md §4.4): Q=4, R=2, B=1, N=1, else 0.
func PhaseWeight(pt PieceType) int {
	switch pt {
	case Queen:
		return 4
	case Rook:
		return 2
	case Bishop, Knight:
		return 1
	default:
		return 0
	}
}
