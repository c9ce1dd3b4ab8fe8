/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package attacks computes, for a given Board and side to move, the
// enemy threat map plus the checks and pins affecting that side's
// king (spec.md §4.2). Grounded on
// original_source/move_generator.py's get_threat_map and
// get_checks_and_pins: checks and pins are discovered by ray-casting
// outward from the king rather than from precomputed attack tables,
// since the board here is a mailbox, not a bitboard.
package attacks

import "github.com/mkarpov/tabiya/internal/types"

// boardReader is the minimal surface attacks needs from a position,
// kept as an interface so this package has no import cycle with
// internal/board.
type boardReader interface {
	PieceAt(sq types.Square) types.Piece
	PieceList(p types.Piece) []types.Square
	KingSquare(c types.Color) types.Square
}

// CheckInfo describes one checking piece.
type CheckInfo struct {
	CheckerSquare types.Square
	Path          []types.Square // squares strictly between checker and king; empty for adjacent/non-sliding checks
	IsSliding     bool
}

// PinInfo describes one pinned piece.
type PinInfo struct {
	PinnerSquare types.Square
	PinnedSquare types.Square
	Path         []types.Square // legal destinations for the pinned piece: squares between king and pinner, plus the pinner's square
}

// Analysis is the full result of analyzing one side's king.
type Analysis struct {
	ThreatMap [120]bool
	Checks    []CheckInfo
	Pins      []PinInfo
}

// InCheck reports whether the analyzed side's king is in check.
func (a *Analysis) InCheck() bool { return len(a.Checks) > 0 }

// DoubleCheck reports whether the king is in check from two pieces at
// once, in which case only king moves are legal (spec.md §4.3).
func (a *Analysis) DoubleCheck() bool { return len(a.Checks) >= 2 }

// PinFor returns the pin affecting the piece on sq, if any.
func (a *Analysis) PinFor(sq types.Square) (PinInfo, bool) {
	for _, p := range a.Pins {
		if p.PinnedSquare == sq {
			return p, true
		}
	}
	return PinInfo{}, false
}

func isOrthogonal(delta int) bool {
	return delta == -10 || delta == -1 || delta == 1 || delta == 10
}

func isDiagonal(delta int) bool {
	return delta == -11 || delta == -9 || delta == 9 || delta == 11
}

// sliderAttacksDirection reports whether a piece of type pt attacks
// along a ray in direction delta.
func sliderAttacksDirection(pt types.PieceType, delta int) bool {
	switch pt {
	case types.Rook:
		return isOrthogonal(delta)
	case types.Bishop:
		return isDiagonal(delta)
	case types.Queen:
		return true
	default:
		return false
	}
}

func directionsFor(pt types.PieceType) []int {
	switch pt {
	case types.Rook:
		return types.OrthogonalDeltas[:]
	case types.Bishop:
		return types.DiagonalDeltas[:]
	case types.Queen:
		return types.KingDeltas[:]
	default:
		return nil
	}
}

// Analyze computes the threat map, checks and pins for the side to
// move us, given the enemy (them) pieces on b.
func Analyze(b boardReader, us types.Color) *Analysis {
	them := us.Flip()
	a := &Analysis{}
	kingSq := b.KingSquare(us)
	friendlyKingPiece := types.MakePiece(us, types.King)

	// Threat map: union of every enemy piece's attacked squares.
	// Sliding rays pass through the friendly king: it does not block
	// enemy rays, since a king may not step along a ray to escape a
	// slider it was blocking.
	for pt := types.Pawn; pt <= types.King; pt++ {
		piece := types.MakePiece(them, pt)
		for _, sq := range b.PieceList(piece) {
			switch pt {
			case types.Pawn:
				deltas := types.WhitePawnCaptureDeltas
				if them == types.Black {
					deltas = types.BlackPawnCaptureDeltas
				}
				for _, d := range deltas {
					t := sq + types.Square(d)
					if t.OnBoard() {
						a.ThreatMap[t] = true
					}
				}
			case types.Knight:
				for _, d := range types.KnightDeltas {
					t := sq + types.Square(d)
					if t.OnBoard() {
						a.ThreatMap[t] = true
					}
				}
			case types.King:
				for _, d := range types.KingDeltas {
					t := sq + types.Square(d)
					if t.OnBoard() {
						a.ThreatMap[t] = true
					}
				}
			default:
				for _, d := range directionsFor(pt) {
					t := sq
					for {
						t += types.Square(d)
						if !t.OnBoard() {
							break
						}
						a.ThreatMap[t] = true
						occ := b.PieceAt(t)
						if occ == types.NoPiece || occ == friendlyKingPiece {
							continue
						}
						break
					}
				}
			}
		}
	}

	// Checks and pins: ray-cast outward from the king in the eight
	// queen directions.
	for _, d := range types.KingDeltas {
		t := kingSq
		var between []types.Square
		for {
			t += types.Square(d)
			if !t.OnBoard() {
				break
			}
			occ := b.PieceAt(t)
			if occ == types.NoPiece {
				between = append(between, t)
				continue
			}
			if occ.Color() == us {
				pinnedSq := t
				pinPath := append([]types.Square(nil), between...)
				u := t
				for {
					u += types.Square(d)
					if !u.OnBoard() {
						break
					}
					occ2 := b.PieceAt(u)
					if occ2 == types.NoPiece {
						pinPath = append(pinPath, u)
						continue
					}
					if occ2.Color() == them && sliderAttacksDirection(occ2.Type(), d) {
						pinPath = append(pinPath, u)
						a.Pins = append(a.Pins, PinInfo{PinnerSquare: u, PinnedSquare: pinnedSq, Path: pinPath})
					}
					break
				}
				break
			}
			// occ.Color() == them
			if sliderAttacksDirection(occ.Type(), d) {
				a.Checks = append(a.Checks, CheckInfo{CheckerSquare: t, Path: append([]types.Square(nil), between...), IsSliding: true})
			}
			break
		}
	}

	for _, d := range types.KnightDeltas {
		t := kingSq + types.Square(d)
		if t.OnBoard() && b.PieceAt(t) == types.MakePiece(them, types.Knight) {
			a.Checks = append(a.Checks, CheckInfo{CheckerSquare: t})
		}
	}

	pawnDeltas := types.WhitePawnCaptureDeltas
	if us == types.Black {
		pawnDeltas = types.BlackPawnCaptureDeltas
	}
	for _, d := range pawnDeltas {
		t := kingSq + types.Square(d)
		if t.OnBoard() && b.PieceAt(t) == types.MakePiece(them, types.Pawn) {
			a.Checks = append(a.Checks, CheckInfo{CheckerSquare: t})
		}
	}

	return a
}
