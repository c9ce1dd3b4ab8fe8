/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Setup()
	fmt.Printf("LogLvl: %v\n", Settings.Log.LogLvl)
	fmt.Printf("SearchLogLvl: %v\n", Settings.Log.SearchLogLvl)
	fmt.Printf("UseTT: %v\n", Settings.Search.UseTT)
	fmt.Printf("TT Size: %v\n", Settings.Search.TTSize)
	assert.True(t, Settings.Search.MaxDepth > 0)
	assert.True(t, Settings.Search.TTSize > 0)
	assert.Len(t, Settings.Search.FutilityMargins, 3)
	assert.Len(t, Settings.Eval.KingAttackPenalties, 10)
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	Setup()
	assert.EqualValues(t, 64, Settings.Search.MaxDepth)
}

func TestString(t *testing.T) {
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Search Config")
	assert.Contains(t, s, "Evaluation Config")
}
