/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"github.com/mkarpov/tabiya/internal/config"
	"github.com/mkarpov/tabiya/internal/types"
)

// killerTable holds two killer moves per remaining-depth slot
// (spec.md §4.5 Heuristic tables), reset at the start of every
// iterative-deepening search.
type killerTable [][2]types.Move

func newKillerTable() killerTable {
	return make(killerTable, config.Settings.Search.MaxDepth+1)
}

// store records m as a killer at depth, shifting the previous slot-0
// killer down to slot 1.
func (k killerTable) store(depth int, m types.Move) {
	if depth < 0 || depth >= len(k) {
		return
	}
	if k[depth][0].Equals(m) {
		return
	}
	k[depth][1] = k[depth][0]
	k[depth][0] = m
}

func (k killerTable) at(depth int) [2]types.Move {
	if depth < 0 || depth >= len(k) {
		return [2]types.Move{}
	}
	return k[depth]
}
