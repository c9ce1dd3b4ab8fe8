/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarpov/tabiya/internal/types"
)

func TestAddAndScore(t *testing.T) {
	h := NewHistory()
	h.Add(types.WKnight, types.Square(45), 4)
	assert.EqualValues(t, 16, h.Score(types.WKnight, types.Square(45)))
	h.Add(types.WKnight, types.Square(45), 3)
	assert.EqualValues(t, 25, h.Score(types.WKnight, types.Square(45)))
}

func TestDecay(t *testing.T) {
	h := NewHistory()
	h.Add(types.BPawn, types.Square(54), 6)
	h.Decay()
	assert.EqualValues(t, 18, h.Score(types.BPawn, types.Square(54)))
}
