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

package types

import (
	"fmt"

	"github.com/mkarpov/tabiya/internal/util"
)

// Value is a centipawn evaluation or search score. Wide enough to
// hold mate encodings (±MateValue), unlike the bitboard-era engine's
// packed int16 score.
type Value int32

// MateValue is the base magnitude for mate scores (spec.md §4.5). A
// mate found at ply p scores ±(MateValue - p); shorter mates therefore
// score strictly higher in absolute value.
const MateValue Value = 99999

// IsMateScore reports whether v falls in the range used to encode a
// forced mate at any realistic search depth.
func IsMateScore(v Value) bool {
	return v > MateValue-1000 || v < -(MateValue-1000)
}

// Abs returns the absolute value.
func (v Value) Abs() Value {
	return Value(util.Abs(int(v)))
}

// Score is a small struct holding a mid-game and an end-game value,
// interpolated by game phase at the end of evaluation (spec.md §4.4).
type Score struct {
	MidGameValue int
	EndGameValue int
}

// Add adds the corresponding parts of the given score to the calling
// score.
func (s *Score) Add(a Score) {
	s.MidGameValue += a.MidGameValue
	s.EndGameValue += a.EndGameValue
}

// Sub subtracts the corresponding parts of the given score from the
// calling score.
func (s *Score) Sub(a Score) {
	s.MidGameValue -= a.MidGameValue
	s.EndGameValue -= a.EndGameValue
}

// ValueFromScore interpolates mid/end values by the game-phase factor
// gpf = phase/24 (spec.md §4.4: score = mg*gpf + eg*(1-gpf)).
func (s *Score) ValueFromScore(gpf float64) Value {
	return Value(float64(s.MidGameValue)*gpf) + Value(float64(s.EndGameValue)*(1.0-gpf))
}

func (s *Score) String() string {
	return fmt.Sprintf("{ mid:%d end:%d }", s.MidGameValue, s.EndGameValue)
}
