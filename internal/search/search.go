/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package search implements iterative-deepening negamax with PVS, late
// move reductions, futility pruning, a transposition table, killer
// and history move ordering, and quiescence search (spec.md §4.5).
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/config"
	"github.com/mkarpov/tabiya/internal/history"
	myLogging "github.com/mkarpov/tabiya/internal/logging"
	"github.com/mkarpov/tabiya/internal/transpositiontable"
	"github.com/mkarpov/tabiya/internal/types"
	"github.com/mkarpov/tabiya/internal/util"
)

var out = message.NewPrinter(language.German)

// timeUp is the sentinel panic value used to unwind every recursive
// search frame back to the iterative-deepening driver once the time
// budget is exceeded (spec.md §5).
type timeUp struct{}

// Result is one completed (or time-curtailed) search.
type Result struct {
	BestMove       types.Move
	DepthCompleted int
	Nodes          uint64
	Score          types.Value
}

// Search owns the heuristic tables and transposition table for one
// engine instance. Not safe for concurrent use by more than one
// goroutine at a time (internal/engine serializes callers).
type Search struct {
	log *logging.Logger

	tt   *transpositiontable.Table
	hist *history.History
	kill killerTable

	maxDepth int
	stats    Statistics

	startTime time.Time
	timeLimit time.Duration
}

// NewSearch creates a Search with a transposition table sized per
// config.Settings.Search.TTSize and an iterative-deepening ceiling of
// config.Settings.Search.MaxDepth.
func NewSearch() *Search {
	s := &Search{
		log:      myLogging.GetLog(),
		hist:     history.NewHistory(),
		maxDepth: config.Settings.Search.MaxDepth,
	}
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.NewTable(config.Settings.Search.TTSize)
	}
	return s
}

// SetMaxDepth overrides the iterative-deepening ceiling for this
// Search instance without mutating the shared config.Settings.
func (s *Search) SetMaxDepth(maxDepth int) {
	if maxDepth > 0 {
		s.maxDepth = maxDepth
	}
}

// Statistics returns the node counts accumulated by the last search.
func (s *Search) Statistics() Statistics {
	return s.stats
}

// StartSearch runs iterative deepening on a clone of root up to this
// Search's depth ceiling (see SetMaxDepth) or until timeLimitSeconds elapses,
// whichever comes first (spec.md §4.5 "Iterative deepening").
func (s *Search) StartSearch(root *board.Board, timeLimitSeconds float64) Result {
	s.hist.Decay()
	s.kill = newKillerTable()
	if s.tt != nil {
		s.tt.NewSearch()
	}
	s.stats = Statistics{}

	b := root.Clone()
	s.startTime = time.Now()
	s.timeLimit = time.Duration(timeLimitSeconds * float64(time.Second))

	var result Result
	var bestMove types.Move

	for depth := 1; depth <= s.maxDepth; depth++ {
		if time.Since(s.startTime) > s.timeLimit {
			break
		}

		move, score, ok := s.searchDepth(b, depth, bestMove)
		if !ok {
			break
		}

		bestMove = move
		result.BestMove = move
		result.Score = score
		result.DepthCompleted = depth

		if s.log != nil {
			s.log.Debugf("depth %2d  score %6d  nodes %d  move %s", depth, score, s.stats.Nodes+s.stats.QNodes, move)
		}
	}

	result.Nodes = s.stats.Nodes + s.stats.QNodes

	if s.log != nil {
		elapsed := time.Since(s.startTime)
		s.log.Infof("search finished after %s, %d nodes, %d nps", elapsed, result.Nodes, util.Nps(result.Nodes, elapsed))
		s.log.Debug(util.GcWithStats())
	}

	return result
}

// searchDepth runs one root search at depth, recovering from a
// time-up unwind and reporting via ok whether a move was found before
// time ran out.
func (s *Search) searchDepth(b *board.Board, depth int, prevBest types.Move) (move types.Move, score types.Value, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isTimeUp := r.(timeUp); isTimeUp {
				ok = false
				return
			}
			panic(r)
		}
	}()
	move, score = s.rootSearch(b, depth, prevBest)
	ok = !move.IsNone()
	return
}

// checkTime panics with timeUp once the search has overrun its
// budget; caught only by searchDepth's recover (spec.md §5).
func (s *Search) checkTime() {
	if time.Since(s.startTime) > s.timeLimit {
		panic(timeUp{})
	}
}

func (s *Search) String() string {
	return out.Sprintf("nodes %d qnodes %d tthits %d betacuts %d", s.stats.Nodes, s.stats.QNodes, s.stats.TTHits, s.stats.BetaCuts)
}
