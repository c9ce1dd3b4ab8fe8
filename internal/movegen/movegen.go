/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package movegen enumerates fully legal moves directly from the
// attack/pin analyzer's output, without a make-and-probe filter
// (spec.md §4.3). Grounded on original_source/move_generator.py's
// generate_moves and its pseudo-legal helpers.
package movegen

import (
	"github.com/mkarpov/tabiya/internal/attacks"
	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/types"
)

func sliderDirections(pt types.PieceType) []int {
	switch pt {
	case types.Bishop:
		return types.DiagonalDeltas[:]
	case types.Rook:
		return types.OrthogonalDeltas[:]
	default: // Queen
		return types.KingDeltas[:]
	}
}

func containsSquare(path []types.Square, sq types.Square) bool {
	for _, p := range path {
		if p == sq {
			return true
		}
	}
	return false
}

func enPassantCapturedSquare(m types.Move) types.Square {
	return types.NewSquare(m.Source.Row(), m.Destination.Col())
}

// isLegal applies the legality filter of spec.md §4.3 to one
// pseudo-legal candidate move, given the attack/pin analysis of the
// position it was generated in.
func isLegal(a *attacks.Analysis, m types.Move) bool {
	if m.MovingPiece.Type() == types.King {
		return !a.ThreatMap[m.Destination]
	}

	if a.InCheck() {
		if a.DoubleCheck() {
			return false
		}
		check := a.Checks[0]
		capturesChecker := m.Destination == check.CheckerSquare
		if m.IsEnPassant && enPassantCapturedSquare(m) == check.CheckerSquare {
			capturesChecker = true
		}
		blocksCheck := check.IsSliding && containsSquare(check.Path, m.Destination)
		if !capturesChecker && !blocksCheck {
			return false
		}
	}

	if pin, ok := a.PinFor(m.Source); ok {
		if !containsSquare(pin.Path, m.Destination) {
			return false
		}
	}
	return true
}

// GenerateLegalMoves returns every fully legal move for the side to
// move on b, plus the number of pieces currently giving check.
func GenerateLegalMoves(b *board.Board) ([]types.Move, int) {
	us := b.SideToMove()
	them := us.Flip()
	a := attacks.Analyze(b, us)

	var moves []types.Move
	add := func(m types.Move) {
		if isLegal(a, m) {
			moves = append(moves, m)
		}
	}

	kingPiece := types.MakePiece(us, types.King)
	kingSq := b.KingSquare(us)
	for _, d := range types.KingDeltas {
		t := kingSq + types.Square(d)
		if !t.OnBoard() {
			continue
		}
		occ := b.PieceAt(t)
		if occ != types.NoPiece && occ.Color() == us {
			continue
		}
		m := types.Move{MovingPiece: kingPiece, Source: kingSq, Destination: t}
		if occ != types.NoPiece {
			m.PieceCaptured = occ
		}
		add(m)
	}

	if a.DoubleCheck() {
		return moves, len(a.Checks)
	}

	knightPiece := types.MakePiece(us, types.Knight)
	for _, sq := range b.PieceList(knightPiece) {
		for _, d := range types.KnightDeltas {
			t := sq + types.Square(d)
			if !t.OnBoard() {
				continue
			}
			occ := b.PieceAt(t)
			if occ != types.NoPiece && occ.Color() == us {
				continue
			}
			m := types.Move{MovingPiece: knightPiece, Source: sq, Destination: t}
			if occ != types.NoPiece {
				m.PieceCaptured = occ
			}
			add(m)
		}
	}

	for _, pt := range []types.PieceType{types.Bishop, types.Rook, types.Queen} {
		piece := types.MakePiece(us, pt)
		dirs := sliderDirections(pt)
		for _, sq := range b.PieceList(piece) {
			for _, d := range dirs {
				t := sq
				for {
					t += types.Square(d)
					if !t.OnBoard() {
						break
					}
					occ := b.PieceAt(t)
					if occ == types.NoPiece {
						add(types.Move{MovingPiece: piece, Source: sq, Destination: t})
						continue
					}
					if occ.Color() != us {
						add(types.Move{MovingPiece: piece, Source: sq, Destination: t, PieceCaptured: occ})
					}
					break
				}
			}
		}
	}

	genPawnMoves(b, us, them, add)
	genCastling(b, a, us, add)

	return moves, len(a.Checks)
}

func genPawnMoves(b *board.Board, us, them types.Color, add func(types.Move)) {
	pawnPiece := types.MakePiece(us, types.Pawn)
	forward, startRow, promRow := -10, 8, 2
	captureDeltas := types.WhitePawnCaptureDeltas
	if us == types.Black {
		forward, startRow, promRow = 10, 3, 9
		captureDeltas = types.BlackPawnCaptureDeltas
	}

	for _, sq := range b.PieceList(pawnPiece) {
		one := sq + types.Square(forward)
		if one.OnBoard() && b.PieceAt(one) == types.NoPiece {
			addPawnDestination(add, pawnPiece, sq, one, types.NoPiece, promRow)
			if sq.Row() == startRow {
				two := sq + types.Square(2*forward)
				if b.PieceAt(two) == types.NoPiece {
					add(types.Move{MovingPiece: pawnPiece, Source: sq, Destination: two})
				}
			}
		}
		for _, d := range captureDeltas {
			t := sq + types.Square(d)
			if !t.OnBoard() {
				continue
			}
			if occ := b.PieceAt(t); occ != types.NoPiece && occ.Color() == them {
				addPawnDestination(add, pawnPiece, sq, t, occ, promRow)
			} else if t == b.EnPassantSquare() {
				capSq := types.NewSquare(sq.Row(), t.Col())
				add(types.Move{MovingPiece: pawnPiece, Source: sq, Destination: t, PieceCaptured: b.PieceAt(capSq), IsEnPassant: true})
			}
		}
	}
}

func addPawnDestination(add func(types.Move), piece types.Piece, from, to types.Square, captured types.Piece, promRow int) {
	if to.Row() == promRow {
		us := piece.Color()
		for _, pt := range []types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight} {
			add(types.Move{MovingPiece: piece, Source: from, Destination: to, PieceCaptured: captured, PromotionPiece: types.MakePiece(us, pt)})
		}
		return
	}
	add(types.Move{MovingPiece: piece, Source: from, Destination: to, PieceCaptured: captured})
}

func genCastling(b *board.Board, a *attacks.Analysis, us types.Color, add func(types.Move)) {
	if a.InCheck() {
		return
	}
	kingPiece := types.MakePiece(us, types.King)
	kingSq := b.KingSquare(us)
	rights := b.Castling()

	if us == types.White {
		if rights.Has(types.WhiteKingside) &&
			b.PieceAt(96) == types.NoPiece && b.PieceAt(97) == types.NoPiece &&
			!a.ThreatMap[96] && !a.ThreatMap[97] {
			add(types.Move{MovingPiece: kingPiece, Source: kingSq, Destination: types.WhiteCastleKingsideTo, IsCastle: true})
		}
		if rights.Has(types.WhiteQueenside) &&
			b.PieceAt(92) == types.NoPiece && b.PieceAt(93) == types.NoPiece && b.PieceAt(94) == types.NoPiece &&
			!a.ThreatMap[93] && !a.ThreatMap[94] {
			add(types.Move{MovingPiece: kingPiece, Source: kingSq, Destination: types.WhiteCastleQueensideTo, IsCastle: true})
		}
		return
	}
	if rights.Has(types.BlackKingside) &&
		b.PieceAt(26) == types.NoPiece && b.PieceAt(27) == types.NoPiece &&
		!a.ThreatMap[26] && !a.ThreatMap[27] {
		add(types.Move{MovingPiece: kingPiece, Source: kingSq, Destination: types.BlackCastleKingsideTo, IsCastle: true})
	}
	if rights.Has(types.BlackQueenside) &&
		b.PieceAt(22) == types.NoPiece && b.PieceAt(23) == types.NoPiece && b.PieceAt(24) == types.NoPiece &&
		!a.ThreatMap[23] && !a.ThreatMap[24] {
		add(types.Move{MovingPiece: kingPiece, Source: kingSq, Destination: types.BlackCastleQueensideTo, IsCastle: true})
	}
}
