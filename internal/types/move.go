/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import "strings"

// Castling destination squares (spec.md §3 Move, §4.1): the
// destination index alone disambiguates which castle a castling move
// performs.
const (
	WhiteCastleKingsideTo  = Square(97)
	WhiteCastleQueensideTo = Square(93)
	BlackCastleKingsideTo  = Square(27)
	BlackCastleQueensideTo = Square(23)
)

// Move is an immutable record produced by the move generator. It
// carries its own "time capsule": enough pre-move state for
// Board.UnmakeMove to restore the board exactly, without the board
// needing a separate undo stack.
type Move struct {
	MovingPiece    Piece
	Source         Square
	Destination    Square
	PieceCaptured  Piece // NoPiece if none; for en passant, the captured pawn
	IsEnPassant    bool
	IsCastle       bool
	PromotionPiece Piece // NoPiece if none

	// Time capsule: state to restore on UnmakeMove.
	PrevCastling    CastlingRights
	PrevEnPassant   Square
	PrevHalfMove    int
	PrevColorToMove Color
	PrevZobrist     uint64
}

// NoMove is the zero-value sentinel for "no move".
var NoMove = Move{}

// IsNone reports whether m is the NoMove sentinel.
func (m Move) IsNone() bool {
	return m.MovingPiece == NoPiece && m.Source == 0 && m.Destination == 0
}

// IsCapture reports whether the move captures a piece (including en
// passant).
func (m Move) IsCapture() bool {
	return m.PieceCaptured != NoPiece
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotionPiece != NoPiece
}

// Equals compares the two moves on their move-identity fields only;
// time-capsule fields are excluded, per spec.md §3.
func (m Move) Equals(other Move) bool {
	return m.MovingPiece == other.MovingPiece &&
		m.Source == other.Source &&
		m.Destination == other.Destination &&
		m.PieceCaptured == other.PieceCaptured &&
		m.IsEnPassant == other.IsEnPassant &&
		m.IsCastle == other.IsCastle &&
		m.PromotionPiece == other.PromotionPiece
}

// String renders uci-style algebraic notation: "e2e4", "e7e8q".
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.Source.String())
	b.WriteString(m.Destination.String())
	if m.PromotionPiece != NoPiece {
		b.WriteByte(strings.ToLower(string(m.PromotionPiece.Char()))[0])
	}
	return b.String()
}
