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

	"github.com/mkarpov/tabiya/internal/types"
	"github.com/mkarpov/tabiya/internal/util"
)

// ParseAlgebraic resolves a uci-style move string ("e2e4", "e7e8q")
// against a list of legal moves, since the string alone does not
// carry capture/en-passant/castle flags (spec.md §6.2, §7
// IllegalMove). Grounded on original_source/utils.py's
// parse_user_move.
func ParseAlgebraic(legalMoves []types.Move, s string) (types.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return types.NoMove, fmt.Errorf("board: malformed move string %q", s)
	}
	from := types.SquareFromString(s[0:2])
	to := types.SquareFromString(s[2:4])
	if from == types.SquareNone || to == types.SquareNone {
		return types.NoMove, fmt.Errorf("board: malformed move string %q", s)
	}
	var promo types.Piece
	if len(s) == 5 {
		if !util.IsLower(s[4]) {
			return types.NoMove, fmt.Errorf("board: malformed promotion suffix in %q", s)
		}
		promo = types.PieceFromChar(s[4] - 'a' + 'A')
		if promo == types.NoPiece {
			return types.NoMove, fmt.Errorf("board: malformed promotion suffix in %q", s)
		}
	}
	for _, m := range legalMoves {
		if m.Source != from || m.Destination != to {
			continue
		}
		if promo != types.NoPiece && m.PromotionPiece.Type() != promo.Type() {
			continue
		}
		if promo == types.NoPiece && m.IsPromotion() {
			continue
		}
		return m, nil
	}
	return types.NoMove, fmt.Errorf("board: illegal move %q", s)
}
