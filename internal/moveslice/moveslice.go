//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package moveslice provides move-ordering helpers for slices of type
// Move (chess moves). Trimmed to the surface internal/search actually
// drives: an in-place insertion sort by caller-supplied score, and a
// debug-friendly String().
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/mkarpov/tabiya/internal/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// Sort orders moves from highest score to lowest score, using the
// scores returned by score for each move. Uses a stable insertion
// sort as MoveSlices are mostly pre-sorted and small. Move itself
// carries no order key (unlike a packed 16-bit move value), so the
// caller supplies one, e.g. MVV-LVA plus killer/history scoring.
func (ms *MoveSlice) Sort(score func(m Move) int64) {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		tmpScore := score(tmp)
		j := i
		for j > 0 && tmpScore > score((*ms)[j-1]) {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String returns a string representation of a slice of moves, used by
// the search's per-depth debug log line.
func (ms *MoveSlice) String() string {
	var os strings.Builder
	size := len(*ms)
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i, m := range *ms {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(m.String())
	}
	os.WriteString(" }")
	return os.String()
}
