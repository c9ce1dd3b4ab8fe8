/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/config"
	"github.com/mkarpov/tabiya/internal/evaluator"
	"github.com/mkarpov/tabiya/internal/movegen"
	"github.com/mkarpov/tabiya/internal/moveslice"
	"github.com/mkarpov/tabiya/internal/transpositiontable"
	"github.com/mkarpov/tabiya/internal/types"
)

// mateScore is the score assigned to the side to move when it has no
// legal moves and is in check, at the given ply from root (spec.md
// §4.5 "Mate-distance encoding"). The side to move lost, hence the
// negative sign in this negamax convention.
func mateScore(ply int) types.Value {
	return -(types.MateValue - types.Value(ply))
}

// relativeEval returns the static evaluation from the perspective of
// the side to move, as negamax requires (evaluator.Evaluate is always
// White-relative).
func relativeEval(b *board.Board) types.Value {
	v := evaluator.Evaluate(b)
	if b.SideToMove() == types.Black {
		return -v
	}
	return v
}

func isQuiet(m types.Move) bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// isDangerousPawnPush reports whether m is a pawn push far enough
// advanced to be excluded from LMR/futility pruning (spec.md §4.5): a
// white pawn reaching rank 6+ or a black pawn reaching rank 3-.
func isDangerousPawnPush(m types.Move) bool {
	if m.MovingPiece.Type() != types.Pawn {
		return false
	}
	rank := 10 - m.Destination.Row()
	if m.MovingPiece.Color() == types.White {
		return rank >= 6
	}
	return rank <= 3
}

// nonPawnMaterial sums types.PhaseWeight over every piece on the
// board except pawns and kings, used to disable futility pruning in
// near-endgame positions (spec.md §4.5).
func nonPawnMaterial(b *board.Board) int {
	total := 0
	for pt := types.Knight; pt <= types.Queen; pt++ {
		total += types.PhaseWeight(pt) * (len(b.PieceList(types.MakePiece(types.White, pt))) + len(b.PieceList(types.MakePiece(types.Black, pt))))
	}
	return total
}

// moveOrderScore implements spec.md §4.5 "Move ordering".
func moveOrderScore(m types.Move, hashMove types.Move, killers [2]types.Move, hist moveHistory) int64 {
	if !hashMove.IsNone() && m.Equals(hashMove) {
		return 2000
	}
	if m.IsCapture() {
		victim := types.PieceValuePawns[m.PieceCaptured.Type()]
		attacker := types.PieceValuePawns[m.MovingPiece.Type()]
		return int64(1000 + 10*victim - attacker)
	}
	if m.Equals(killers[0]) || m.Equals(killers[1]) {
		return 900
	}
	return hist.Score(m.MovingPiece, m.Destination)
}

// moveHistory is the slice of the *history.History API this package
// needs, kept as an interface so move-ordering helpers are trivially
// testable without constructing a full History.
type moveHistory interface {
	Score(piece types.Piece, dest types.Square) int64
}

// rootSearch evaluates every legal root move with a full-window
// negamax call (spec.md §4.5 "Root search"); it never touches the
// transposition table.
func (s *Search) rootSearch(b *board.Board, depth int, prevBest types.Move) (types.Move, types.Value) {
	moves, _ := movegen.GenerateLegalMoves(b)
	if len(moves) == 0 {
		return types.NoMove, 0
	}

	ms := moveslice.MoveSlice(moves)
	ms.Sort(func(m types.Move) int64 { return moveOrderScore(m, prevBest, [2]types.Move{}, s.hist) })
	moves = []types.Move(ms)

	if s.log != nil {
		s.log.Debugf("root depth %d candidates: %s", depth, ms.String())
	}

	alpha := -(types.MateValue + 1)
	beta := types.MateValue + 1

	var best types.Move
	bestScore := alpha

	for _, m := range moves {
		mm := m
		b.MakeMove(&mm)
		score := -s.search(b, depth-1, 1, -beta, -alpha)
		b.UnmakeMove(mm)

		if best.IsNone() || score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return best, bestScore
}

// search is the negamax inner search (spec.md §4.5 "Inner search").
func (s *Search) search(b *board.Board, depth, ply int, alpha, beta types.Value) types.Value {
	s.checkTime()

	if b.IsRepetition() {
		return 0
	}

	moves, checkCount := movegen.GenerateLegalMoves(b)
	inCheck := checkCount > 0

	if len(moves) == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return 0
	}

	if b.FiftyMoveMet() {
		return 0
	}

	if depth == 0 {
		if config.Settings.Search.UseQuiescence {
			return s.qsearch(b, alpha, beta, ply, 0)
		}
		return relativeEval(b)
	}

	s.stats.Nodes++
	origAlpha := alpha

	var hashMove types.Move
	if s.tt != nil {
		if e := s.tt.Probe(b.Hash()); e != nil {
			s.stats.TTHits++
			hashMove = e.Move
			if e.Depth >= depth {
				switch e.Flag {
				case transpositiontable.Exact:
					return e.Score
				case transpositiontable.LowerBound:
					if e.Score > alpha {
						alpha = e.Score
					}
				case transpositiontable.UpperBound:
					if e.Score < beta {
						beta = e.Score
					}
				}
				if alpha >= beta {
					return e.Score
				}
			}
		}
	}

	futilityOK := false
	var staticEval types.Value
	if config.Settings.Search.UseFutility && depth <= config.Settings.Search.FutilityMaxDepth && !inCheck {
		staticEval = relativeEval(b)
		win := types.Value(config.Settings.Search.WinScore)
		if staticEval.Abs() <= win && nonPawnMaterial(b) > 4 {
			futilityOK = true
		}
	}

	var killers [2]types.Move
	if config.Settings.Search.UseKiller {
		killers = s.kill.at(depth)
	}
	ms := moveslice.MoveSlice(moves)
	ms.Sort(func(m types.Move) int64 { return moveOrderScore(m, hashMove, killers, s.hist) })
	moves = []types.Move(ms)

	var bestMove types.Move
	bestScore := -(types.MateValue + 1)

	for i, m := range moves {
		if futilityOK && i > 0 && isQuiet(m) && !isDangerousPawnPush(m) {
			margin := types.Value(0)
			if depth < len(config.Settings.Search.FutilityMargins) {
				margin = types.Value(config.Settings.Search.FutilityMargins[depth])
			}
			if staticEval+margin <= alpha {
				s.stats.FpPrunings++
				continue
			}
		}

		mm := m
		b.MakeMove(&mm)

		var score types.Value
		switch {
		case i == 0 || !config.Settings.Search.UsePVS:
			score = -s.search(b, depth-1, ply+1, -beta, -alpha)
		default:
			reduced := depth - 1
			if config.Settings.Search.UseLmr && s.lmrApplies(depth, i, m, inCheck) {
				reduced--
			}
			score = -s.search(b, reduced, ply+1, -(alpha + 1), -alpha)
			if score > alpha && score < beta {
				score = -s.search(b, depth-1, ply+1, -beta, -alpha)
			}
		}

		b.UnmakeMove(mm)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.stats.BetaCuts++
			if isQuiet(m) {
				if config.Settings.Search.UseKiller {
					s.kill.store(depth, m)
				}
				s.hist.Add(m.MovingPiece, m.Destination, depth)
			}
			break
		}
	}

	if s.tt != nil {
		flag := transpositiontable.Exact
		switch {
		case bestScore <= origAlpha:
			flag = transpositiontable.UpperBound
		case bestScore >= beta:
			flag = transpositiontable.LowerBound
		}
		s.tt.Store(b.Hash(), depth, flag, bestScore, bestMove)
	}

	return bestScore
}

// lmrApplies reports whether move i (0-based) at depth qualifies for
// a late move reduction (spec.md §4.5 "Principal Variation Search
// with Late Move Reductions"): reduction is always exactly one ply.
func (s *Search) lmrApplies(depth, i int, m types.Move, inCheck bool) bool {
	return depth >= config.Settings.Search.LmrMinDepth &&
		i >= config.Settings.Search.LmrMinMoveIndex &&
		!m.IsCapture() && !m.IsPromotion() &&
		!inCheck && !isDangerousPawnPush(m)
}

// qsearch is the quiescence search (spec.md §4.5 "Quiescence search").
// While in check it searches every legal evasion with no stand-pat
// floor (see DESIGN.md Open Question 2); otherwise it searches only
// captures/promotions with a stand-pat floor and delta pruning.
func (s *Search) qsearch(b *board.Board, alpha, beta types.Value, ply, qDepth int) types.Value {
	s.checkTime()
	s.stats.QNodes++

	moves, checkCount := movegen.GenerateLegalMoves(b)
	inCheck := checkCount > 0

	if len(moves) == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return 0
	}

	if inCheck {
		best := -(types.MateValue + 1)
		for _, m := range moves {
			mm := m
			b.MakeMove(&mm)
			score := -s.qsearch(b, -beta, -alpha, ply+1, qDepth+1)
			b.UnmakeMove(mm)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	captures := filterCaptures(moves)
	if qDepth >= config.Settings.Search.QSMaxPly || len(captures) == 0 {
		return relativeEval(b)
	}

	standPat := relativeEval(b)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	cs := moveslice.MoveSlice(captures)
	cs.Sort(func(m types.Move) int64 {
		return int64(10*types.PieceValuePawns[m.PieceCaptured.Type()] - types.PieceValuePawns[m.MovingPiece.Type()])
	})
	captures = []types.Move(cs)

	best := standPat
	delta := types.Value(config.Settings.Search.Delta)

	for _, m := range captures {
		if !m.IsPromotion() {
			victim := types.PieceValuePawns[m.PieceCaptured.Type()]
			attacker := types.PieceValuePawns[m.MovingPiece.Type()]
			margin := delta + types.Value(100*(victim-attacker))
			if standPat+margin < alpha {
				continue
			}
		}

		mm := m
		b.MakeMove(&mm)
		score := -s.qsearch(b, -beta, -alpha, ply+1, qDepth+1)
		b.UnmakeMove(mm)

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return best
}

func filterCaptures(moves []types.Move) []types.Move {
	filtered := moves[:0:0]
	for _, m := range moves {
		if m.IsCapture() || m.IsPromotion() {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
