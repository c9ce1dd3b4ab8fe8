/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package movegen

import (
	"fmt"

	"github.com/mkarpov/tabiya/internal/board"
)

// Perft counts the leaf nodes of the legal-move tree to a fixed
// depth; used to exercise the generator against the known perft
// counts in spec.md §8. Grounded on the counter-struct shape of the
// teacher's internal/movegen/perft.go, driving the mailbox generator
// instead of a bitboard one.
type Perft struct {
	Nodes uint64
}

// Run counts perft(depth) starting from b, mutating and restoring b
// via make/unmake rather than cloning at each node, and stores the
// total in p.Nodes.
func (p *Perft) Run(b *board.Board, depth int) uint64 {
	nodes := perft(b, depth)
	p.Nodes = nodes
	return nodes
}

func perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves, _ := GenerateLegalMoves(b)
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(&m)
		nodes += perft(b, depth-1)
		b.UnmakeMove(m)
	}
	return nodes
}

func (p *Perft) String() string {
	return fmt.Sprintf("perft: %d nodes", p.Nodes)
}
