package eval

import "math/rand"

// Random adds a small amount of jitter to a move's score, in millipawns of
// the Score unit. It exists purely as an optional engine-personality knob
// wired to the -noise flag; the default zero value always returns zero, so
// the evaluator stays fully deterministic as §5 requires unless a caller
// opts in.
type Random struct {
	rand  *rand.Rand
	limit int
}

// NewRandom returns a jitter source drawing from [-limit/2; limit/2]
// millipawns.
func NewRandom(limit int, seed int64) Random {
	return Random{limit: limit, rand: rand.New(rand.NewSource(seed))}
}

func (n Random) Next() Score {
	if n.limit <= 0 || n.rand == nil {
		return 0
	}
	return Score(n.rand.Intn(n.limit)-n.limit/2) / 1000
}
