/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarpov/tabiya/internal/types"
)

func TestNewBoardStartingPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, types.White, b.SideToMove())
	assert.Equal(t, types.AllCastlingRights, b.Castling())
	assert.Equal(t, types.SquareNone, b.EnPassantSquare())
	assert.Equal(t, types.WRook, b.PieceAt(types.SquareFromString("a1")))
	assert.Equal(t, types.BKing, b.PieceAt(types.SquareFromString("e8")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.SquareFromString("e4")))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"8/8/8/4k3/8/8/4K3/8 w - - 5 30",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.FEN())
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	_, err := ParseFEN("not a fen")
	assert.Error(t, err)
}

func TestParseFENRejectsBadPieceChar(t *testing.T) {
	_, err := ParseFEN("rnbqkbnz/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestMakeUnmakeMoveRestoresState(t *testing.T) {
	b := NewBoard()
	before := b.FEN()
	beforeHash := b.Hash()

	m := types.Move{MovingPiece: types.WPawn, Source: types.SquareFromString("e2"), Destination: types.SquareFromString("e4")}
	b.MakeMove(&m)

	assert.Equal(t, types.Black, b.SideToMove())
	assert.Equal(t, types.SquareFromString("e3"), b.EnPassantSquare())
	assert.Equal(t, types.WPawn, b.PieceAt(types.SquareFromString("e4")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.SquareFromString("e2")))
	assert.NotEqual(t, beforeHash, b.Hash())

	b.UnmakeMove(m)
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeHash, b.Hash())
}

func TestMakeUnmakeCapture(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	assert.NoError(t, err)
	before := b.FEN()

	m := types.Move{
		MovingPiece:   types.WPawn,
		Source:        types.SquareFromString("e4"),
		Destination:   types.SquareFromString("d5"),
		PieceCaptured: types.BPawn,
	}
	b.MakeMove(&m)
	assert.Equal(t, types.WPawn, b.PieceAt(types.SquareFromString("d5")))
	assert.Equal(t, 0, b.HalfMoveClock())

	b.UnmakeMove(m)
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, types.BPawn, b.PieceAt(types.SquareFromString("d5")))
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	before := b.FEN()

	m := types.Move{
		MovingPiece:   types.WPawn,
		Source:        types.SquareFromString("e5"),
		Destination:   types.SquareFromString("d6"),
		PieceCaptured: types.BPawn,
		IsEnPassant:   true,
	}
	b.MakeMove(&m)
	assert.Equal(t, types.WPawn, b.PieceAt(types.SquareFromString("d6")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.SquareFromString("d5")))

	b.UnmakeMove(m)
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, types.BPawn, b.PieceAt(types.SquareFromString("d5")))
}

func TestMakeUnmakeCastle(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := b.FEN()

	m := types.Move{
		MovingPiece: types.WKing,
		Source:      types.SquareFromString("e1"),
		Destination: types.WhiteCastleKingsideTo,
		IsCastle:    true,
	}
	b.MakeMove(&m)
	assert.Equal(t, types.WKing, b.PieceAt(types.SquareFromString("g1")))
	assert.Equal(t, types.WRook, b.PieceAt(types.SquareFromString("f1")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.SquareFromString("h1")))
	assert.False(t, b.Castling().Has(types.WhiteKingside))
	assert.False(t, b.Castling().Has(types.WhiteQueenside))

	b.UnmakeMove(m)
	assert.Equal(t, before, b.FEN())
}

func TestMakeUnmakePromotion(t *testing.T) {
	b, err := ParseFEN("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	assert.NoError(t, err)
	before := b.FEN()

	m := types.Move{
		MovingPiece:    types.WPawn,
		Source:         types.SquareFromString("a7"),
		Destination:    types.SquareFromString("a8"),
		PromotionPiece: types.WQueen,
	}
	b.MakeMove(&m)
	assert.Equal(t, types.WQueen, b.PieceAt(types.SquareFromString("a8")))

	b.UnmakeMove(m)
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, types.WPawn, b.PieceAt(types.SquareFromString("a7")))
}

func TestFiftyMoveMet(t *testing.T) {
	b, err := ParseFEN("8/8/4k3/8/8/4K3/8/8 w - - 99 60")
	assert.NoError(t, err)
	assert.False(t, b.FiftyMoveMet())

	m := types.Move{MovingPiece: types.WKing, Source: types.SquareFromString("e3"), Destination: types.SquareFromString("e4")}
	b.MakeMove(&m)
	assert.True(t, b.FiftyMoveMet())
}

func TestIsRepetition(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.IsRepetition())

	moves := []types.Move{
		{MovingPiece: types.WKnight, Source: types.SquareFromString("g1"), Destination: types.SquareFromString("f3")},
		{MovingPiece: types.BKnight, Source: types.SquareFromString("g8"), Destination: types.SquareFromString("f6")},
	}
	for _, m := range moves {
		mm := m
		b.MakeMove(&mm)
	}
	assert.False(t, b.IsRepetition())

	// Shuffling the same two knights back home reproduces the starting
	// position's hash, which this half-move-clock-bounded scan already
	// flags as a repetition without waiting for a third occurrence.
	back := []types.Move{
		{MovingPiece: types.WKnight, Source: types.SquareFromString("f3"), Destination: types.SquareFromString("g1")},
		{MovingPiece: types.BKnight, Source: types.SquareFromString("f6"), Destination: types.SquareFromString("g8")},
	}
	for _, m := range back {
		mm := m
		b.MakeMove(&mm)
	}
	assert.True(t, b.IsRepetition())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	clone := b.Clone()

	m := types.Move{MovingPiece: types.WPawn, Source: types.SquareFromString("e2"), Destination: types.SquareFromString("e4")}
	clone.MakeMove(&m)

	assert.Equal(t, types.White, b.SideToMove())
	assert.Equal(t, types.NoPiece, b.PieceAt(types.SquareFromString("e4")))
	assert.Equal(t, types.Black, clone.SideToMove())
	assert.Equal(t, types.WPawn, clone.PieceAt(types.SquareFromString("e4")))
}

func TestKingSquare(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, types.SquareFromString("e1"), b.KingSquare(types.White))
	assert.Equal(t, types.SquareFromString("e8"), b.KingSquare(types.Black))
}
