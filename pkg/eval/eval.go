package eval

import "github.com/lucas0201/noirmate/pkg/board"

// weight returns the per-square pressure weight used by Evaluate when
// scoring threats made by attacker: an empty square is worth a flat 50;
// a square occupied by the attacker's own piece is discounted to half its
// nominal value (threatening a square you already hold is worth less),
// while a square occupied by the opponent's piece counts at full value.
func weight(b *board.Board, sq board.Square, attacker board.Color) Score {
	occ := b.At(sq)
	if occ == nil {
		return 50
	}
	v := NominalValue(occ.ID.Kind())
	if occ.ID.Color() == attacker {
		return v / 2
	}
	return v
}

func pressure(b *board.Board, attacker board.Color) Score {
	var sum Score
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		for r := board.ZeroRank; r < board.NumRanks; r++ {
			sq := board.NewSquare(f, r)
			if board.Threat(b, sq, attacker) {
				sum += weight(b, sq, attacker)
			}
		}
	}
	return sum
}

// Evaluate scores the position that results from mover's most recent move:
// own weighted pressure over the opponent's weighted pressure plus one, per
// §4.6 step 3-4.
func Evaluate(b *board.Board, mover board.Color) Score {
	own := pressure(b, mover)
	opp := 1 + pressure(b, mover.Opponent())
	return own / opp
}
