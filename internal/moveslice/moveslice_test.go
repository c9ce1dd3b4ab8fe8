//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mkarpov/tabiya/internal/types"
)

func sq(s string) Square { return SquareFromString(s) }

func TestSortOrdersByScore(t *testing.T) {
	low := Move{MovingPiece: WKnight, Source: sq("g1"), Destination: sq("f3")}
	mid := Move{MovingPiece: WPawn, Source: sq("e2"), Destination: sq("e4")}
	high := Move{MovingPiece: WPawn, Source: sq("e4"), Destination: sq("d5"), PieceCaptured: BPawn}

	ms := MoveSlice{low, mid, high}
	score := func(m Move) int64 {
		switch {
		case m.Equals(high):
			return 1000
		case m.Equals(mid):
			return 500
		default:
			return 0
		}
	}
	ms.Sort(score)

	assert.True(t, ms[0].Equals(high))
	assert.True(t, ms[1].Equals(mid))
	assert.True(t, ms[2].Equals(low))
}

func TestSortIsStableOnEqualScores(t *testing.T) {
	a := Move{MovingPiece: WKnight, Source: sq("g1"), Destination: sq("f3")}
	b := Move{MovingPiece: WKnight, Source: sq("b1"), Destination: sq("c3")}

	ms := MoveSlice{a, b}
	ms.Sort(func(m Move) int64 { return 0 })

	assert.True(t, ms[0].Equals(a))
	assert.True(t, ms[1].Equals(b))
}

func TestString(t *testing.T) {
	ms := MoveSlice{
		{MovingPiece: WPawn, Source: sq("e2"), Destination: sq("e4")},
		{MovingPiece: WPawn, Source: sq("d2"), Destination: sq("d4")},
	}
	s := ms.String()
	assert.Contains(t, s, "MoveList: [2]")
	assert.Contains(t, s, "e2e4")
	assert.Contains(t, s, "d2d4")
}

func TestStringEmpty(t *testing.T) {
	var ms MoveSlice
	assert.Equal(t, "MoveList: [0] {  }", ms.String())
}
