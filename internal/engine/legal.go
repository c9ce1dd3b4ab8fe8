/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package engine

import (
	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/movegen"
	"github.com/mkarpov/tabiya/internal/types"
)

// isLegal reports whether m (move-identity fields only) is in root's
// legal move list, used to validate an externally supplied book move
// before returning it unchecked.
func isLegal(root *board.Board, m types.Move) bool {
	moves, _ := movegen.GenerateLegalMoves(root)
	for _, lm := range moves {
		if lm.Equals(m) {
			return true
		}
	}
	return false
}
