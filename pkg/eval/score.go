// Package eval implements the one-ply heuristic evaluator and move chooser
// of §4.6: each of the mover's legal moves is scored by a pressure ratio
// and the move with the largest score wins, tie-broken by a fixed
// lexicographic key on the mover.
package eval

import (
	"fmt"

	"github.com/lucas0201/noirmate/pkg/board"
)

// Score is a move's one-ply pressure ratio. It has no fixed range: it is
// the quotient of two non-negative weighted-threat sums.
type Score float64

// NoMove is the initial score the chooser starts from; any legal move's
// score is non-negative and beats it.
const NoMove Score = -1

func (s Score) String() string {
	return fmt.Sprintf("%.4f", float64(s))
}

// NominalValue returns the piece-score table of §4.6. The king's value is
// arbitrarily large since it is never actually captured in a legal
// position; it exists so the formula weights squares near the king highly.
func NominalValue(k board.Kind) Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Bishop, board.Knight:
		return 325
	case board.Rook:
		return 550
	case board.Queen:
		return 1000
	case board.King:
		return 50000
	default:
		return 0
	}
}
