/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package engine is the public entry point to the chess core: one
// Engine instance owns one Search and serializes concurrent callers
// of FindBestMove (spec.md §5, §6.1).
package engine

import (
	"context"
	"errors"

	"golang.org/x/sync/semaphore"

	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/search"
	"github.com/mkarpov/tabiya/internal/types"
)

// ErrSearchInFlight is returned by FindBestMove when another search
// on this Engine instance is already running; the caller never
// queues behind it (spec.md §5).
var ErrSearchInFlight = errors.New("engine: a search is already in progress on this instance")

// ErrNoLegalMove is returned whenever the search finds no move. In a
// terminal position (checkmate or stalemate) this simply means there
// is no move to play; in a non-terminal position it is, per spec.md
// §7, a bug rather than a recoverable condition. The two cases are not
// told apart here.
var ErrNoLegalMove = errors.New("engine: search returned no move")

// BestMove is the result of FindBestMove (spec.md §6.1).
type BestMove struct {
	Move           types.Move
	DepthCompleted int
	NodesSearched  uint64
	IsBook         bool
}

// Engine is a single chess engine instance: one transposition table,
// one history table, one killer table, all owned by its Search.
type Engine struct {
	maxDepth int
	s        *search.Search
	busy     *semaphore.Weighted
}

// NewEngine creates an Engine whose iterative deepening never passes
// maxDepth (spec.md §6.1 "new_engine(max_depth)"). A maxDepth of 0 or
// less keeps the configured default ceiling.
func NewEngine(maxDepth int) *Engine {
	s := search.NewSearch()
	s.SetMaxDepth(maxDepth)
	return &Engine{
		maxDepth: maxDepth,
		s:        s,
		busy:     semaphore.NewWeighted(1),
	}
}

// FindBestMove searches root for the best move for side to move,
// bounded by timeLimitSeconds. If bookMove is non-nil and legal in
// root, it is returned immediately with IsBook set and no search
// performed (spec.md §6.1, SPEC_FULL.md "opening-book pass-through").
func (e *Engine) FindBestMove(root *board.Board, timeLimitSeconds float64, bookMove *types.Move) (BestMove, error) {
	if !e.busy.TryAcquire(1) {
		return BestMove{}, ErrSearchInFlight
	}
	defer e.busy.Release(1)

	if bookMove != nil && isLegal(root, *bookMove) {
		return BestMove{Move: *bookMove, IsBook: true}, nil
	}

	result := e.s.StartSearch(root, timeLimitSeconds)
	if result.BestMove.IsNone() {
		return BestMove{}, ErrNoLegalMove
	}

	return BestMove{
		Move:           result.BestMove,
		DepthCompleted: result.DepthCompleted,
		NodesSearched:  result.Nodes,
		IsBook:         false,
	}, nil
}

// TryFindBestMove is FindBestMove with a context, returning promptly
// with ctx.Err() if the context is already done before the semaphore
// can be acquired; it does not interrupt a running search (spec.md §5
// places cancellation entirely inside Search's own time budget).
func (e *Engine) TryFindBestMove(ctx context.Context, root *board.Board, timeLimitSeconds float64, bookMove *types.Move) (BestMove, error) {
	if err := e.busy.Acquire(ctx, 1); err != nil {
		return BestMove{}, err
	}
	defer e.busy.Release(1)

	if bookMove != nil && isLegal(root, *bookMove) {
		return BestMove{Move: *bookMove, IsBook: true}, nil
	}

	result := e.s.StartSearch(root, timeLimitSeconds)
	if result.BestMove.IsNone() {
		return BestMove{}, ErrNoLegalMove
	}

	return BestMove{
		Move:           result.BestMove,
		DepthCompleted: result.DepthCompleted,
		NodesSearched:  result.Nodes,
		IsBook:         false,
	}, nil
}
