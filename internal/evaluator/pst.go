/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package evaluator

import "github.com/mkarpov/tabiya/internal/types"

// Tables below are indexed 0..63 with a8=0, h1=63 (White's own
// perspective; Black pieces are looked up through flip64). Pawn,
// knight, bishop, rook and queen keep the same table for both game
// phases; only the king's table changes sharply between mid game
// (favor the back-rank corners) and end game (favor the center),
// which is what drives the tapering in practice. Grounded on
// original_source/evaluation.py's PeSTO-style tables; reproduced here
// from the well-known public piece-square values rather than the
// exact source numbers, which were not recoverable verbatim.
var (
	pawnPST = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPST = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopPST = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookPST = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	queenPST = [64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingMGPST = [64]int{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
	kingEGPST = [64]int{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

func pstMG(pt types.PieceType, idx int) int {
	switch pt {
	case types.Pawn:
		return pawnPST[idx]
	case types.Knight:
		return knightPST[idx]
	case types.Bishop:
		return bishopPST[idx]
	case types.Rook:
		return rookPST[idx]
	case types.Queen:
		return queenPST[idx]
	case types.King:
		return kingMGPST[idx]
	default:
		return 0
	}
}

func pstEG(pt types.PieceType, idx int) int {
	if pt == types.King {
		return kingEGPST[idx]
	}
	return pstMG(pt, idx)
}

// flip64 mirrors a 0..63 PST index vertically, for looking up Black's
// pieces through White-oriented tables.
func flip64(idx int) int {
	return idx ^ 56
}

// materialValue gives the base centipawn value of each piece type.
var materialValue = map[types.PieceType]int{
	types.Pawn:   100,
	types.Knight: 320,
	types.Bishop: 330,
	types.Rook:   500,
	types.Queen:  900,
	types.King:   0,
}

// KingAttackPenalties bounds the king-attack-pressure penalty table
// (spec.md §6.4).
var KingAttackPenalties = [10]int{0, 5, 15, 40, 70, 100, 150, 200, 250, 300}
