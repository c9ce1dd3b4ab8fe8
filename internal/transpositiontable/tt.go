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

// Package transpositiontable implements a transposition table (cache)
// for a chess engine search. The Table type is not thread safe and
// needs to be synchronized externally if shared across searches.
package transpositiontable

import (
	"math/bits"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mkarpov/tabiya/internal/logging"
	"github.com/mkarpov/tabiya/internal/types"
	"github.com/mkarpov/tabiya/internal/util"
)

var out = message.NewPrinter(language.German)

// Table is a fixed-size, direct-mapped transposition table.
type Table struct {
	log   *logging.Logger
	data  []Entry
	mask  uint64
	cycle uint16

	numberOfPuts   uint64
	numberOfProbes uint64
	numberOfHits   uint64
}

// NewTable creates a table with capacity rounded down to a power of
// two (at least 1).
func NewTable(size int) *Table {
	if size < 1 {
		size = 1
	}
	capacity := 1 << uint(bits.Len(uint(size))-1)
	t := &Table{
		log:  myLogging.GetLog(),
		data: make([]Entry, capacity),
		mask: uint64(capacity - 1),
	}
	if t.log != nil {
		t.log.Debug(util.MemStat())
	}
	return t
}

func (t *Table) index(hash uint64) uint64 {
	return hash & t.mask
}

// Probe returns the stored entry for hash, or nil if absent or stale.
func (t *Table) Probe(hash uint64) *Entry {
	t.numberOfProbes++
	e := &t.data[t.index(hash)]
	if e.Flag != NoFlag && e.Hash == hash {
		t.numberOfHits++
		return e
	}
	return nil
}

// Store writes an entry. An occupant holding the same hash is always
// updated; an occupant for a different position is replaced unless it
// is from the current search cycle and was searched deeper than the
// new entry (spec.md TT replacement policy).
func (t *Table) Store(hash uint64, depth int, flag Flag, score types.Value, move types.Move) {
	t.numberOfPuts++
	e := &t.data[t.index(hash)]

	if e.Flag != NoFlag && e.Hash == hash {
		e.Depth = depth
		e.Flag = flag
		e.Score = score
		if !move.IsNone() {
			e.Move = move
		}
		e.Age = t.cycle
		return
	}

	if e.Flag != NoFlag && e.Age == t.cycle && depth < e.Depth {
		return
	}

	*e = Entry{Hash: hash, Depth: depth, Flag: flag, Score: score, Move: move, Age: t.cycle}
}

// NewSearch advances the replacement-aging cycle. Called once per
// root search so stale entries from earlier searches get replaced
// freely while entries written during the current search still
// respect the depth-based replacement policy.
func (t *Table) NewSearch() {
	t.cycle++
}

// Clear empties every slot.
func (t *Table) Clear() {
	t.data = make([]Entry, len(t.data))
	t.numberOfPuts = 0
	t.numberOfProbes = 0
	t.numberOfHits = 0
}

// Len returns the table's slot capacity.
func (t *Table) Len() int {
	return len(t.data)
}

// Hashfull returns how full the table looks, in permille, sampled
// from the first 1000 slots as per UCI convention.
func (t *Table) Hashfull() int {
	n := len(t.data)
	if n == 0 {
		return 0
	}
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.data[i].Flag != NoFlag {
			used++
		}
	}
	return used * 1000 / sample
}

func (t *Table) String() string {
	return out.Sprintf("TT: capacity %d puts %d probes %d hits %d (%d%%)",
		len(t.data), t.numberOfPuts, t.numberOfProbes, t.numberOfHits,
		(t.numberOfHits*100)/(1+t.numberOfProbes))
}
