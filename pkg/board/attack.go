package board

// Threat reports whether sq is attacked by a piece of color attacker. It
// follows the reverse-generation approach of §4.2: rather than scanning
// every attacker, it walks outward from sq along each piece kind's movement
// rule and asks whether the first thing found along that rule belongs to
// attacker and has the matching kind. A bishop-ray hit matches bishop or
// queen; a rook-ray hit matches rook or queen.
func Threat(b *Board, sq Square, attacker Color) bool {
	defender := attacker.Opponent()

	for _, t := range pawnAttackSquares(defender, sq) {
		if occ := b.At(t); occ != nil && occ.ID.Color() == attacker && occ.ID.Kind() == Pawn {
			return true
		}
	}
	for _, t := range knightSquares(sq) {
		if occ := b.At(t); occ != nil && occ.ID.Color() == attacker && occ.ID.Kind() == Knight {
			return true
		}
	}
	for _, dir := range bishopDirs {
		if t, ok := firstOnRay(b, sq, dir); ok {
			if occ := b.At(t); occ.ID.Color() == attacker && occ.ID.IsQueenMove() && occ.ID.Kind() != Rook {
				return true
			}
		}
	}
	for _, dir := range rookDirs {
		if t, ok := firstOnRay(b, sq, dir); ok {
			if occ := b.At(t); occ.ID.Color() == attacker && occ.ID.IsQueenMove() && occ.ID.Kind() != Bishop {
				return true
			}
		}
	}
	for _, t := range kingSquares(sq) {
		if occ := b.At(t); occ != nil && occ.ID.Color() == attacker && occ.ID.Kind() == King {
			return true
		}
	}
	return false
}

type offset struct{ df, dr int }

var (
	bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	knightDirs = []offset{{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1}}
	kingDirs   = append(append([]offset{}, bishopDirs...), rookDirs...)
)

func shift(sq Square, o offset) (Square, bool) {
	f := int(sq.File) + o.df
	r := int(sq.Rank) + o.dr
	if f < 0 || f >= int(NumFiles) || r < 0 || r >= int(NumRanks) {
		return Square{}, false
	}
	return Square{File: File(f), Rank: Rank(r)}, true
}

func knightSquares(sq Square) []Square {
	var out []Square
	for _, d := range knightDirs {
		if s, ok := shift(sq, d); ok {
			out = append(out, s)
		}
	}
	return out
}

func kingSquares(sq Square) []Square {
	var out []Square
	for _, d := range kingDirs {
		if s, ok := shift(sq, d); ok {
			out = append(out, s)
		}
	}
	return out
}

// pawnAttackSquares returns the squares a pawn of color c standing on sq
// would capture diagonally onto.
func pawnAttackSquares(c Color, sq Square) []Square {
	dr := 1
	if c == Black {
		dr = -1
	}
	var out []Square
	if s, ok := shift(sq, offset{1, dr}); ok {
		out = append(out, s)
	}
	if s, ok := shift(sq, offset{-1, dr}); ok {
		out = append(out, s)
	}
	return out
}

// firstOnRay walks from sq in direction dir and returns the first occupied
// square encountered, if any.
func firstOnRay(b *Board, sq Square, dir offset) (Square, bool) {
	cur := sq
	for {
		next, ok := shift(cur, dir)
		if !ok {
			return Square{}, false
		}
		if b.At(next) != nil {
			return next, true
		}
		cur = next
	}
}
