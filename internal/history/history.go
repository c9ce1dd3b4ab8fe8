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

// Package history provides the quiet-move ordering table updated
// during search: a per-piece, per-destination counter that steers
// later move ordering toward moves that have caused beta cutoffs
// before.
package history

import (
	"github.com/mkarpov/tabiya/internal/types"
)

// History holds the [piece][destination] quiet-move score table
// (spec.md move-ordering section).
type History struct {
	Count [types.NumPieceTypes][120]int64
}

// NewHistory creates an empty History table.
func NewHistory() *History {
	return &History{}
}

// Add records a beta cutoff by a quiet move: piece moving to dest at
// remaining search depth d contributes d*d to its score.
func (h *History) Add(piece types.Piece, dest types.Square, depth int) {
	h.Count[piece.Index()][dest] += int64(depth) * int64(depth)
}

// Score returns the current ordering score for a quiet move.
func (h *History) Score(piece types.Piece, dest types.Square) int64 {
	return h.Count[piece.Index()][dest]
}

// Decay halves every entry, called once per search to keep older
// cutoffs from permanently dominating move ordering.
func (h *History) Decay() {
	for i := range h.Count {
		for j := range h.Count[i] {
			h.Count[i][j] /= 2
		}
	}
}
