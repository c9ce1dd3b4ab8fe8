/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package evaluator scores a position statically from White's point of
// view: material, tapered piece-square tables, mobility and king
// safety. Evaluate reads only the board's piece lists and mailbox
// array and never mutates or probes moves, so it stays a pure function
// independent of internal/movegen. Each heuristic is individually
// switchable through config.Settings.Eval, matching the teacher's
// evaluation gating style.
package evaluator

import (
	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/config"
	"github.com/mkarpov/tabiya/internal/types"
	"github.com/mkarpov/tabiya/internal/util"
)

type scanBoard interface {
	PieceAt(sq types.Square) types.Piece
	PieceList(p types.Piece) []types.Square
	KingSquare(c types.Color) types.Square
}

// Evaluate returns the static score of b in centipawns from White's
// perspective: positive favors White, negative favors Black.
func Evaluate(b *board.Board) types.Value {
	var score types.Score
	var phase int
	var whiteMobility, blackMobility int
	var whiteKingPressure, blackKingPressure int

	whiteKingSq := b.KingSquare(types.White)
	blackKingSq := b.KingSquare(types.Black)

	for pt := types.Pawn; pt <= types.King; pt++ {
		phaseUnit := types.PhaseWeight(pt)

		for _, sq := range b.PieceList(types.MakePiece(types.White, pt)) {
			score.Add(pieceScore(pt, sq.Index64()))
			phase += phaseUnit
			if config.Settings.Eval.UseMobilityEval && pt != types.Pawn && pt != types.King {
				squares := attackSquares(b, sq, pt, types.White)
				whiteMobility += len(squares)
				blackKingPressure += kingRingPressure(squares, blackKingSq, pt)
			}
		}
		for _, sq := range b.PieceList(types.MakePiece(types.Black, pt)) {
			score.Sub(pieceScore(pt, flip64(sq.Index64())))
			phase += phaseUnit
			if config.Settings.Eval.UseMobilityEval && pt != types.Pawn && pt != types.King {
				squares := attackSquares(b, sq, pt, types.Black)
				blackMobility += len(squares)
				whiteKingPressure += kingRingPressure(squares, whiteKingSq, pt)
			}
		}
	}

	phase = util.Min(phase, 24)
	gpf := float64(phase) / 24.0
	total := int(score.ValueFromScore(gpf))

	if config.Settings.Eval.UseMobilityEval {
		total += int(config.Settings.Eval.MobilityWeight) * (whiteMobility - blackMobility)
	}

	if config.Settings.Eval.UseKingSafetyEval {
		kingSafety := kingAttackPenalty(blackKingPressure) - kingAttackPenalty(whiteKingPressure)
		kingSafety += pawnShieldPenalty(b, types.Black, blackKingSq) - pawnShieldPenalty(b, types.White, whiteKingSq)
		total += kingSafety * phase / 24
	}

	total += int(config.Settings.Eval.Tempo)

	return types.Value(total)
}

func pieceScore(pt types.PieceType, idx int) types.Score {
	var s types.Score
	if config.Settings.Eval.UseMaterialEval {
		s.MidGameValue += materialValue[pt]
		s.EndGameValue += materialValue[pt]
	}
	if config.Settings.Eval.UsePSTEval {
		s.MidGameValue += pstMG(pt, idx)
		s.EndGameValue += pstEG(pt, idx)
	}
	return s
}

// attackSquares enumerates the squares a piece on sq attacks, for
// mobility and king-attack-ring counting. Duplicated from
// internal/movegen rather than imported, keeping the evaluator a leaf
// package with no dependency on move generation.
func attackSquares(b scanBoard, sq types.Square, pt types.PieceType, us types.Color) []types.Square {
	var out []types.Square
	switch pt {
	case types.Knight:
		for _, d := range types.KnightDeltas {
			t := sq + types.Square(d)
			if t.OnBoard() && !ownPiece(b, t, us) {
				out = append(out, t)
			}
		}
	case types.King:
		for _, d := range types.KingDeltas {
			t := sq + types.Square(d)
			if t.OnBoard() && !ownPiece(b, t, us) {
				out = append(out, t)
			}
		}
	case types.Bishop, types.Rook, types.Queen:
		for _, d := range sliderDirections(pt) {
			t := sq
			for {
				t += types.Square(d)
				if !t.OnBoard() {
					break
				}
				occ := b.PieceAt(t)
				if occ == types.NoPiece {
					out = append(out, t)
					continue
				}
				if occ.Color() != us {
					out = append(out, t)
				}
				break
			}
		}
	}
	return out
}

func ownPiece(b scanBoard, sq types.Square, us types.Color) bool {
	occ := b.PieceAt(sq)
	return occ != types.NoPiece && occ.Color() == us
}

func sliderDirections(pt types.PieceType) []int {
	switch pt {
	case types.Bishop:
		return types.DiagonalDeltas[:]
	case types.Rook:
		return types.OrthogonalDeltas[:]
	default: // Queen
		return types.KingDeltas[:]
	}
}

// kingRingPressure weights how many of a piece's attacked squares fall
// within the one-square ring around the enemy king.
func kingRingPressure(attacked []types.Square, enemyKing types.Square, pt types.PieceType) int {
	bonus := kingAttackBonus(pt)
	count := 0
	for _, sq := range attacked {
		if inKingRing(sq, enemyKing) {
			count++
		}
	}
	return count * bonus
}

func inKingRing(sq, kingSq types.Square) bool {
	if sq == kingSq {
		return true
	}
	for _, d := range types.KingDeltas {
		if kingSq+types.Square(d) == sq {
			return true
		}
	}
	return false
}

func kingAttackBonus(pt types.PieceType) int {
	switch pt {
	case types.Queen:
		return 5
	case types.Rook:
		return 4
	case types.Bishop, types.Knight:
		return 2
	default:
		return 0
	}
}

// kingAttackPenalty converts a weighted king-attack-ring count into a
// centipawn penalty via a clamped lookup into the configured table.
func kingAttackPenalty(weighted int) int {
	table := config.Settings.Eval.KingAttackPenalties
	if len(table) == 0 {
		table = KingAttackPenalties[:]
	}
	weighted = util.Max(weighted, 0)
	weighted = util.Min(weighted, len(table)-1)
	return int(table[weighted])
}

// pawnShieldPenalty charges c's king for missing pawn cover on the
// three files in front of it: nothing if c has a pawn one rank ahead
// of the king on that file, PawnShieldAdvanced if the pawn is two
// ranks ahead instead, and PawnShieldMalus otherwise. Pawns further
// ahead are not looked at.
func pawnShieldPenalty(b scanBoard, c types.Color, kingSq types.Square) int {
	forward := -10
	if c == types.Black {
		forward = 10
	}
	pawn := types.MakePiece(c, types.Pawn)
	penalty := 0
	for _, dc := range []int{-1, 0, 1} {
		file := kingSq.Col() + dc
		if file < 1 || file > 8 {
			continue
		}
		near := types.NewSquare(kingSq.Row(), file) + types.Square(forward)
		far := near + types.Square(forward)
		switch {
		case near.OnBoard() && b.PieceAt(near) == pawn:
			// shielded
		case far.OnBoard() && b.PieceAt(far) == pawn:
			penalty += int(config.Settings.Eval.PawnShieldAdvanced)
		default:
			penalty += int(config.Settings.Eval.PawnShieldMalus)
		}
	}
	return penalty
}
