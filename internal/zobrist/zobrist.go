/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package zobrist holds the process-wide, immutable Zobrist key
// tables used to maintain the Board's incremental position hash
// (spec.md §3 "Zobrist keys"). Keys are seeded deterministically so
// that hashes are reproducible across runs, matching
// original_source/board.py's random.seed(0) behavior.
package zobrist

import "github.com/mkarpov/tabiya/internal/types"

const seed = 1070372

var (
	// PieceSquare[piece.Index()][square.Index64()] is the key XORed in
	// when a piece occupies a square.
	PieceSquare [types.NumPieceTypes][64]uint64

	// Castling[rights] is indexed directly by a CastlingRights 4-bit
	// value (0..15).
	Castling [16]uint64

	// EnPassantFile[file-1] is indexed by the 0-based board file (0..7)
	// of the en-passant target square.
	EnPassantFile [8]uint64

	// SideToMove is XORed in when it is black's turn.
	SideToMove uint64
)

func init() {
	r := newRandom(seed)
	for p := 0; p < types.NumPieceTypes; p++ {
		for sq := 0; sq < 64; sq++ {
			PieceSquare[p][sq] = r.rand64()
		}
	}
	for i := range Castling {
		Castling[i] = r.rand64()
	}
	for i := range EnPassantFile {
		EnPassantFile[i] = r.rand64()
	}
	SideToMove = r.rand64()
}
