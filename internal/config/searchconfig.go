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

package config

// searchConfiguration is a data structure to hold the configuration of
// an instance of a search.
type searchConfiguration struct {
	MaxDepth         int
	ThinkTimeSeconds float64

	// Transposition table
	UseTT  bool
	TTSize int // number of entries, rounded down to a power of two

	// Quiescence search
	UseQuiescence bool
	QSMaxPly      int
	Delta         int16

	// Move ordering
	UsePVS    bool
	UseKiller bool

	// Prunings
	UseLmr           bool
	LmrMinDepth      int
	LmrMinMoveIndex  int
	UseFutility      bool
	FutilityMaxDepth int
	FutilityMargins  []int16
	WinScore         int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.MaxDepth = 64
	Settings.Search.ThinkTimeSeconds = 6.0

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 1 << 18

	Settings.Search.UseQuiescence = true
	Settings.Search.QSMaxPly = 8
	Settings.Search.Delta = 100

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinDepth = 3
	Settings.Search.LmrMinMoveIndex = 3

	Settings.Search.UseFutility = true
	Settings.Search.FutilityMaxDepth = 2
	Settings.Search.FutilityMargins = []int16{0, 100, 300}
	Settings.Search.WinScore = 500
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupSearch() {
	if len(Settings.Search.FutilityMargins) == 0 {
		Settings.Search.FutilityMargins = []int16{0, 100, 300}
	}
}
