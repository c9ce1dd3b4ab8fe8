/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/types"
)

func TestAnalyzeNoCheckStartingPosition(t *testing.T) {
	b := board.NewBoard()
	a := Analyze(b, types.White)
	assert.False(t, a.InCheck())
	assert.False(t, a.DoubleCheck())
	assert.Empty(t, a.Pins)
}

func TestAnalyzeDetectsSlidingCheck(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	assert.NoError(t, err)
	a := Analyze(b, types.White)
	assert.True(t, a.InCheck())
	assert.False(t, a.DoubleCheck())
	assert.Equal(t, types.SquareFromString("h1"), a.Checks[0].CheckerSquare)
	assert.True(t, a.Checks[0].IsSliding)
}

func TestAnalyzeDetectsKnightCheck(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/5n2/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	a := Analyze(b, types.White)
	assert.True(t, a.InCheck())
	assert.False(t, a.Checks[0].IsSliding)
}

func TestAnalyzeDetectsDoubleCheck(t *testing.T) {
	b, err := board.ParseFEN("k7/8/8/8/4r3/3n4/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	a := Analyze(b, types.White)
	assert.True(t, a.DoubleCheck())
}

func TestAnalyzeDetectsPin(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/4r3/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	a := Analyze(b, types.White)
	pin, ok := a.PinFor(types.SquareFromString("e2"))
	assert.True(t, ok)
	assert.Equal(t, types.SquareFromString("e3"), pin.PinnerSquare)
}

func TestAnalyzeThreatMapCoversPawnAttacks(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/3p4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	a := Analyze(b, types.White)
	assert.True(t, a.ThreatMap[types.SquareFromString("c3")])
	assert.True(t, a.ThreatMap[types.SquareFromString("e3")])
}
