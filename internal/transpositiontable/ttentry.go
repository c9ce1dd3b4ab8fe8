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

package transpositiontable

import "github.com/mkarpov/tabiya/internal/types"

// Flag classifies how a stored score bounds the true minimax value.
type Flag int8

const (
	// NoFlag marks an empty slot.
	NoFlag Flag = iota
	// Exact means the stored score is the position's true value.
	Exact
	// LowerBound means the true value is at least the stored score (a
	// beta cutoff occurred; the stored score is a fail-high).
	LowerBound
	// UpperBound means the true value is at most the stored score (no
	// move raised alpha; the stored score is a fail-low).
	UpperBound
)

// Entry is one transposition table slot. Kept as a plain struct
// rather than the teacher's bit-packed 128-bit layout: the mailbox
// engine's Move is already a multi-field struct, not a packed 16-bit
// value, so there is nothing left to gain from bit-packing the rest.
type Entry struct {
	Hash  uint64
	Depth int
	Flag  Flag
	Score types.Value
	Move  types.Move
	Age   uint16
}
