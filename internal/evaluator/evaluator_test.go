/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/types"
)

func TestStartPosZeroEval(t *testing.T) {
	b := board.NewBoard()
	assert.EqualValues(t, 0, Evaluate(b))
}

func TestMirroredZeroEval(t *testing.T) {
	b, err := board.ParseFEN("r1bq1rk1/pppp1pp1/2n2n1p/1B2p3/1b2P3/2N2N1P/PPPP1PP1/R1BQ1RK1 w - - 0 1")
	assert.NoError(t, err)
	assert.EqualValues(t, 0, Evaluate(b))
}

func TestMaterialImbalance(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, Evaluate(b) > 800)
}

func TestBlackMaterialAdvantageIsNegative(t *testing.T) {
	b, err := board.ParseFEN("4kq2/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, Evaluate(b) < -800)
}

func TestPawnShieldPenaltyAppliesToExposedKing(t *testing.T) {
	exposed, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	shielded, err := board.ParseFEN("4k3/8/8/8/8/8/PPP5/2K5 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pawnShieldPenalty(exposed, types.White, exposed.KingSquare(types.White)) > pawnShieldPenalty(shielded, types.White, shielded.KingSquare(types.White)))
}
