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

// evalConfiguration holds the tunables of the static evaluator.
type evalConfiguration struct {
	UseMaterialEval bool
	UsePSTEval      bool
	UseMobilityEval bool
	MobilityWeight  int16

	UseKingSafetyEval   bool
	KingAttackPenalties []int16
	PawnShieldMalus     int16
	PawnShieldAdvanced  int16

	Tempo int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseMaterialEval = true
	Settings.Eval.UsePSTEval = true
	Settings.Eval.UseMobilityEval = true
	Settings.Eval.MobilityWeight = 2

	Settings.Eval.UseKingSafetyEval = true
	Settings.Eval.KingAttackPenalties = []int16{0, 5, 15, 40, 70, 100, 150, 200, 250, 300}
	Settings.Eval.PawnShieldMalus = 25
	Settings.Eval.PawnShieldAdvanced = 15

	Settings.Eval.Tempo = 0
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupEval() {
	if len(Settings.Eval.KingAttackPenalties) == 0 {
		Settings.Eval.KingAttackPenalties = []int16{0, 5, 15, 40, 70, 100, 150, 200, 250, 300}
	}
}
