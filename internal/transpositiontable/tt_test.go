/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarpov/tabiya/internal/types"
)

func TestNewTableRoundsCapacityDownToPowerOfTwo(t *testing.T) {
	tt := NewTable(100)
	assert.Equal(t, 64, tt.Len())

	tt = NewTable(1 << 18)
	assert.Equal(t, 1<<18, tt.Len())
}

func TestStoreAndProbe(t *testing.T) {
	tt := NewTable(1024)
	move := types.Move{MovingPiece: types.WPawn, Source: types.SquareFromString("e2"), Destination: types.SquareFromString("e4")}

	tt.Store(12345, 4, Exact, 37, move)
	e := tt.Probe(12345)
	if assert.NotNil(t, e) {
		assert.EqualValues(t, 12345, e.Hash)
		assert.EqualValues(t, 4, e.Depth)
		assert.Equal(t, Exact, e.Flag)
		assert.EqualValues(t, 37, e.Score)
		assert.True(t, e.Move.Equals(move))
	}

	assert.Nil(t, tt.Probe(999))
}

func TestStoreKeepsDeeperEntryWithinCycle(t *testing.T) {
	tt := NewTable(1) // single slot, forces a collision
	move := types.Move{MovingPiece: types.WPawn, Source: types.SquareFromString("e2"), Destination: types.SquareFromString("e4")}

	tt.Store(1, 6, Exact, 10, move)
	tt.Store(2, 3, Exact, 20, move) // shallower, different hash: must not replace
	e := tt.Probe(1)
	assert.NotNil(t, e)

	tt.Store(2, 8, Exact, 30, move) // deeper: replaces
	assert.Nil(t, tt.Probe(1))
	e = tt.Probe(2)
	assert.NotNil(t, e)
	assert.EqualValues(t, 8, e.Depth)
}

func TestClearRemovesAllEntries(t *testing.T) {
	tt := NewTable(64)
	move := types.Move{MovingPiece: types.WPawn, Source: types.SquareFromString("e2"), Destination: types.SquareFromString("e4")}
	tt.Store(5, 2, Exact, 1, move)
	assert.NotNil(t, tt.Probe(5))
	tt.Clear()
	assert.Nil(t, tt.Probe(5))
}

func TestNewSearchAllowsOverwritingStaleShallowerEntries(t *testing.T) {
	tt := NewTable(1) // single slot, forces a collision
	move := types.Move{MovingPiece: types.WPawn, Source: types.SquareFromString("e2"), Destination: types.SquareFromString("e4")}

	tt.Store(1, 6, Exact, 10, move)
	tt.NewSearch()
	tt.Store(2, 1, Exact, 20, move) // shallower, but from a new cycle: replaces the stale slot
	assert.Nil(t, tt.Probe(1))
	assert.NotNil(t, tt.Probe(2))
}
