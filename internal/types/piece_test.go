/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	assert.Equal(t, WPawn, MakePiece(White, Pawn))
	assert.Equal(t, BQueen, MakePiece(Black, Queen))
	assert.Equal(t, NoPiece, MakePiece(White, NoPieceType))
}

func TestPieceColorAndType(t *testing.T) {
	assert.Equal(t, White, WKnight.Color())
	assert.Equal(t, Black, BKnight.Color())
	assert.Equal(t, Knight, WKnight.Type())
	assert.Equal(t, Knight, BKnight.Type())
}

func TestPieceIndexIsDense(t *testing.T) {
	seen := map[int]bool{}
	for p := WPawn; p <= BKing; p++ {
		idx := p.Index()
		assert.False(t, seen[idx], "duplicate index %d", idx)
		seen[idx] = true
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, NumPieceTypes)
	}
}

func TestPieceCharRoundTrip(t *testing.T) {
	for p := WPawn; p <= BKing; p++ {
		c := p.Char()
		assert.Equal(t, p, PieceFromChar(c))
	}
	assert.Equal(t, NoPiece, PieceFromChar('z'))
}

func TestIsSliding(t *testing.T) {
	assert.True(t, Bishop.IsSliding())
	assert.True(t, Rook.IsSliding())
	assert.True(t, Queen.IsSliding())
	assert.False(t, Knight.IsSliding())
	assert.False(t, Pawn.IsSliding())
	assert.False(t, King.IsSliding())
}

func TestPhaseWeight(t *testing.T) {
	assert.Equal(t, 4, PhaseWeight(Queen))
	assert.Equal(t, 2, PhaseWeight(Rook))
	assert.Equal(t, 1, PhaseWeight(Bishop))
	assert.Equal(t, 1, PhaseWeight(Knight))
	assert.Equal(t, 0, PhaseWeight(Pawn))
	assert.Equal(t, 0, PhaseWeight(King))
}
