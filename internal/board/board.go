/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package board holds the mailbox position representation: the Board
// type, its make/unmake move logic with incremental Zobrist hashing,
// and FEN/algebraic-move serialization (spec.md §3, §4.1).
package board

import (
	"github.com/mkarpov/tabiya/internal/types"
	"github.com/mkarpov/tabiya/internal/util"
	"github.com/mkarpov/tabiya/internal/zobrist"
)

// Board is a 10x12 mailbox position plus the auxiliary state needed
// to make and unmake moves without recomputation (spec.md §3).
type Board struct {
	mailbox   [120]types.Piece
	pieceList [types.NumPieceTypes][]types.Square

	sideToMove    types.Color
	castling      types.CastlingRights
	epSquare      types.Square
	halfMoveClock int
	ply           int
	hash          uint64
	history       []uint64
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err)
	}
	return b
}

// PieceAt returns the piece (or NoPiece/OutOfBounds) occupying sq.
func (b *Board) PieceAt(sq types.Square) types.Piece {
	return b.mailbox[sq]
}

// PieceList returns the (read-only by convention) list of squares
// occupied by the given piece token.
func (b *Board) PieceList(p types.Piece) []types.Square {
	return b.pieceList[p.Index()]
}

// KingSquare returns the square of the given color's king.
func (b *Board) KingSquare(c types.Color) types.Square {
	return b.pieceList[types.MakePiece(c, types.King).Index()][0]
}

func (b *Board) SideToMove() types.Color           { return b.sideToMove }
func (b *Board) Castling() types.CastlingRights    { return b.castling }
func (b *Board) EnPassantSquare() types.Square     { return b.epSquare }
func (b *Board) HalfMoveClock() int                { return b.halfMoveClock }
func (b *Board) Ply() int                          { return b.ply }
func (b *Board) Hash() uint64                      { return b.hash }

// FiftyMoveMet reports whether the 50-move (100 half-move) rule has
// been reached (spec.md §4.5 base case 5).
func (b *Board) FiftyMoveMet() bool {
	return b.halfMoveClock >= 100
}

// IsRepetition reports whether the current position's hash occurred
// earlier since the last irreversible move (spec.md §4.5 base case 2),
// scanning the half_move history entries that precede the current one.
func (b *Board) IsRepetition() bool {
	n := len(b.history)
	if n == 0 {
		return false
	}
	current := b.history[n-1]
	start := util.Max(0, n-1-b.halfMoveClock)
	for i := start; i < n-1; i++ {
		if b.history[i] == current {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so a search can mutate freely without
// affecting the caller's board (spec.md §5).
func (b *Board) Clone() *Board {
	nb := &Board{
		mailbox:       b.mailbox,
		sideToMove:    b.sideToMove,
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfMoveClock: b.halfMoveClock,
		ply:           b.ply,
		hash:          b.hash,
	}
	for i := range b.pieceList {
		nb.pieceList[i] = append([]types.Square(nil), b.pieceList[i]...)
	}
	nb.history = append([]uint64(nil), b.history...)
	return nb
}

// computeHash recomputes the Zobrist hash from scratch; used by FEN
// parsing and by invariant checks (spec.md §8).
func (b *Board) computeHash() uint64 {
	var h uint64
	for idx := 0; idx < types.NumPieceTypes; idx++ {
		for _, sq := range b.pieceList[idx] {
			h ^= zobrist.PieceSquare[idx][sq.Index64()]
		}
	}
	h ^= zobrist.Castling[b.castling]
	if b.epSquare != types.SquareNone {
		h ^= zobrist.EnPassantFile[b.epSquare.Col()-1]
	}
	if b.sideToMove == types.Black {
		h ^= zobrist.SideToMove
	}
	return h
}

// setSquare, addToList and removeFromList mutate the mailbox/piece
// lists without touching the hash; used during UnmakeMove, which
// restores the hash wholesale from the move's time capsule instead of
// undoing each XOR individually.
func (b *Board) setSquare(sq types.Square, p types.Piece) {
	b.mailbox[sq] = p
}

func (b *Board) addToList(p types.Piece, sq types.Square) {
	b.pieceList[p.Index()] = append(b.pieceList[p.Index()], sq)
}

func (b *Board) removeFromList(p types.Piece, sq types.Square) {
	lst := b.pieceList[p.Index()]
	for i, s := range lst {
		if s == sq {
			lst[i] = lst[len(lst)-1]
			b.pieceList[p.Index()] = lst[:len(lst)-1]
			return
		}
	}
}

// place sets sq to p, updates the piece list and XORs the hash.
func (b *Board) place(p types.Piece, sq types.Square) {
	b.setSquare(sq, p)
	b.addToList(p, sq)
	b.hash ^= zobrist.PieceSquare[p.Index()][sq.Index64()]
}

// remove clears sq (which must hold p), updates the piece list and
// XORs the hash.
func (b *Board) remove(p types.Piece, sq types.Square) {
	b.setSquare(sq, types.NoPiece)
	b.removeFromList(p, sq)
	b.hash ^= zobrist.PieceSquare[p.Index()][sq.Index64()]
}

// rookCastleSquares returns the rook's home and destination squares
// for the castle that lands the king on dest.
func rookCastleSquares(dest types.Square) (from, to types.Square) {
	switch dest {
	case types.WhiteCastleKingsideTo:
		return types.Square(98), types.Square(96)
	case types.WhiteCastleQueensideTo:
		return types.Square(91), types.Square(94)
	case types.BlackCastleKingsideTo:
		return types.Square(28), types.Square(26)
	default: // BlackCastleQueensideTo
		return types.Square(21), types.Square(24)
	}
}

func revokeOnSquare(rights types.CastlingRights, sq types.Square) types.CastlingRights {
	switch int(sq) {
	case 91:
		return rights.Without(types.WhiteQueenside)
	case 98:
		return rights.Without(types.WhiteKingside)
	case 21:
		return rights.Without(types.BlackQueenside)
	case 28:
		return rights.Without(types.BlackKingside)
	}
	return rights
}

// MakeMove applies m to the board (spec.md §4.1). The move's time
// capsule fields are filled in from the board's pre-move state before
// any mutation, so UnmakeMove can later restore it exactly.
func (b *Board) MakeMove(m *types.Move) {
	m.PrevCastling = b.castling
	m.PrevEnPassant = b.epSquare
	m.PrevHalfMove = b.halfMoveClock
	m.PrevColorToMove = b.sideToMove
	m.PrevZobrist = b.hash

	mover := m.MovingPiece
	us := b.sideToMove

	switch {
	case m.IsCastle:
		b.remove(mover, m.Source)
		b.place(mover, m.Destination)
		rook := types.MakePiece(us, types.Rook)
		rookFrom, rookTo := rookCastleSquares(m.Destination)
		b.remove(rook, rookFrom)
		b.place(rook, rookTo)
	case m.IsEnPassant:
		b.remove(mover, m.Source)
		b.place(mover, m.Destination)
		capSq := types.NewSquare(m.Source.Row(), m.Destination.Col())
		b.remove(m.PieceCaptured, capSq)
	default:
		if m.PieceCaptured != types.NoPiece {
			b.remove(m.PieceCaptured, m.Destination)
		}
		b.remove(mover, m.Source)
		if m.IsPromotion() {
			b.place(m.PromotionPiece, m.Destination)
		} else {
			b.place(mover, m.Destination)
		}
	}

	b.hash ^= zobrist.SideToMove
	b.sideToMove = us.Flip()

	if mover.Type() == types.Pawn || m.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	if b.epSquare != types.SquareNone {
		b.hash ^= zobrist.EnPassantFile[b.epSquare.Col()-1]
	}
	b.epSquare = types.SquareNone
	if mover.Type() == types.Pawn {
		delta := int(m.Destination) - int(m.Source)
		if delta == 20 || delta == -20 {
			b.epSquare = types.Square((int(m.Source) + int(m.Destination)) / 2)
			b.hash ^= zobrist.EnPassantFile[b.epSquare.Col()-1]
		}
	}

	b.hash ^= zobrist.Castling[b.castling]
	newRights := b.castling
	if mover.Type() == types.King {
		if us == types.White {
			newRights = newRights.Without(types.WhiteKingside | types.WhiteQueenside)
		} else {
			newRights = newRights.Without(types.BlackKingside | types.BlackQueenside)
		}
	}
	newRights = revokeOnSquare(newRights, m.Source)
	newRights = revokeOnSquare(newRights, m.Destination)
	b.castling = newRights
	b.hash ^= zobrist.Castling[b.castling]

	b.ply++
	b.history = append(b.history, b.hash)
}

// UnmakeMove is the exact inverse of the paired MakeMove call,
// restoring the board bit-for-bit using m's time capsule.
func (b *Board) UnmakeMove(m types.Move) {
	b.ply--
	b.history = b.history[:len(b.history)-1]

	us := m.PrevColorToMove
	mover := m.MovingPiece

	switch {
	case m.IsCastle:
		b.removeFromList(mover, m.Destination)
		b.setSquare(m.Destination, types.NoPiece)
		b.setSquare(m.Source, mover)
		b.addToList(mover, m.Source)
		rook := types.MakePiece(us, types.Rook)
		rookFrom, rookTo := rookCastleSquares(m.Destination)
		b.removeFromList(rook, rookTo)
		b.setSquare(rookTo, types.NoPiece)
		b.setSquare(rookFrom, rook)
		b.addToList(rook, rookFrom)
	case m.IsEnPassant:
		b.removeFromList(mover, m.Destination)
		b.setSquare(m.Destination, types.NoPiece)
		b.setSquare(m.Source, mover)
		b.addToList(mover, m.Source)
		capSq := types.NewSquare(m.Source.Row(), m.Destination.Col())
		b.setSquare(capSq, m.PieceCaptured)
		b.addToList(m.PieceCaptured, capSq)
	default:
		if m.IsPromotion() {
			b.removeFromList(m.PromotionPiece, m.Destination)
		} else {
			b.removeFromList(mover, m.Destination)
		}
		b.setSquare(m.Destination, types.NoPiece)
		b.setSquare(m.Source, mover)
		b.addToList(mover, m.Source)
		if m.PieceCaptured != types.NoPiece {
			b.setSquare(m.Destination, m.PieceCaptured)
			b.addToList(m.PieceCaptured, m.Destination)
		}
	}

	b.castling = m.PrevCastling
	b.epSquare = m.PrevEnPassant
	b.halfMoveClock = m.PrevHalfMove
	b.sideToMove = m.PrevColorToMove
	b.hash = m.PrevZobrist
}
