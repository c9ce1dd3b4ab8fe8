/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkarpov/tabiya/internal/types"
)

// ParseFEN resets a new Board to the position described by a FEN
// string: rebuilds the mailbox and piece lists, and recomputes the
// full Zobrist hash with history reset to that single entry (spec.md
// §6.2). Grounded on original_source/utils.py's set_board_from_fen.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: malformed FEN %q: need at least 4 fields", fen)
	}

	b := &Board{}
	for i := range b.mailbox {
		b.mailbox[i] = types.OutOfBounds
	}

	row, col := 2, 1
	for _, c := range fields[0] {
		switch {
		case c == '/':
			row++
			col = 1
		case c >= '1' && c <= '8':
			n := int(c - '0')
			for k := 0; k < n; k++ {
				b.mailbox[types.NewSquare(row, col)] = types.NoPiece
				col++
			}
		default:
			p := types.PieceFromChar(byte(c))
			if p == types.NoPiece {
				return nil, fmt.Errorf("board: malformed FEN %q: bad piece char %q", fen, c)
			}
			sq := types.NewSquare(row, col)
			b.mailbox[sq] = p
			b.pieceList[p.Index()] = append(b.pieceList[p.Index()], sq)
			col++
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = types.White
	case "b":
		b.sideToMove = types.Black
	default:
		return nil, fmt.Errorf("board: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	b.castling = 0
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castling |= types.WhiteKingside
			case 'Q':
				b.castling |= types.WhiteQueenside
			case 'k':
				b.castling |= types.BlackKingside
			case 'q':
				b.castling |= types.BlackQueenside
			}
		}
	}

	if fields[3] == "-" {
		b.epSquare = types.SquareNone
	} else {
		b.epSquare = types.SquareFromString(fields[3])
	}

	if len(fields) >= 5 {
		if hm, err := strconv.Atoi(fields[4]); err == nil {
			b.halfMoveClock = hm
		}
	}
	ply := 0
	if len(fields) >= 6 {
		if fm, err := strconv.Atoi(fields[5]); err == nil && fm > 0 {
			ply = (fm - 1) * 2
		}
	}
	if b.sideToMove == types.Black {
		ply++
	}
	b.ply = ply

	b.hash = b.computeHash()
	b.history = []uint64{b.hash}
	return b, nil
}

// FEN renders the board back to Forsyth-Edwards notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 2; row <= 9; row++ {
		if row > 2 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 1; col <= 8; col++ {
			p := b.mailbox[types.NewSquare(row, col)]
			if p == types.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == types.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())

	sb.WriteByte(' ')
	if b.epSquare == types.SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.String())
	}

	fullMove := b.ply/2 + 1
	fmt.Fprintf(&sb, " %d %d", b.halfMoveClock, fullMove)
	return sb.String()
}
