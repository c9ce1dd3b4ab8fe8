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

func TestMoveIsNone(t *testing.T) {
	assert.True(t, NoMove.IsNone())

	m := Move{MovingPiece: WPawn, Source: SquareFromString("e2"), Destination: SquareFromString("e4")}
	assert.False(t, m.IsNone())
}

func TestMoveCaptureAndPromotion(t *testing.T) {
	quiet := Move{MovingPiece: WPawn, Source: SquareFromString("e2"), Destination: SquareFromString("e4")}
	assert.False(t, quiet.IsCapture())
	assert.False(t, quiet.IsPromotion())

	capture := Move{MovingPiece: WPawn, Source: SquareFromString("e4"), Destination: SquareFromString("d5"), PieceCaptured: BPawn}
	assert.True(t, capture.IsCapture())

	promo := Move{MovingPiece: WPawn, Source: SquareFromString("e7"), Destination: SquareFromString("e8"), PromotionPiece: WQueen}
	assert.True(t, promo.IsPromotion())
}

func TestMoveEqualsIgnoresTimeCapsule(t *testing.T) {
	a := Move{
		MovingPiece: WPawn, Source: SquareFromString("e2"), Destination: SquareFromString("e4"),
		PrevHalfMove: 0, PrevZobrist: 123,
	}
	b := Move{
		MovingPiece: WPawn, Source: SquareFromString("e2"), Destination: SquareFromString("e4"),
		PrevHalfMove: 5, PrevZobrist: 456,
	}
	assert.True(t, a.Equals(b))

	c := Move{MovingPiece: WPawn, Source: SquareFromString("e2"), Destination: SquareFromString("e3")}
	assert.False(t, a.Equals(c))
}

func TestMoveString(t *testing.T) {
	m := Move{MovingPiece: WPawn, Source: SquareFromString("e2"), Destination: SquareFromString("e4")}
	assert.Equal(t, "e2e4", m.String())

	promo := Move{MovingPiece: WPawn, Source: SquareFromString("e7"), Destination: SquareFromString("e8"), PromotionPiece: WQueen}
	assert.Equal(t, "e7e8q", promo.String())
}
