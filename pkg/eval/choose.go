package eval

import "github.com/lucas0201/noirmate/pkg/board"

// Choice is the chooser's selected move and the score it earned.
type Choice struct {
	Piece  *board.Piece
	Target board.Target
	Score  Score
}

// tieKey is the lexicographic (piece-kind-code, from-file, from-rank) key
// of §4.6's tie-break. Since every candidate in a single Choose call shares
// the mover's color, ordering by the raw ID is equivalent to ordering by
// kind code.
type tieKey struct {
	id   board.ID
	file board.File
	rank board.Rank
}

func (k tieKey) less(o tieKey) bool {
	if k.id != o.id {
		return k.id < o.id
	}
	if k.file != o.file {
		return k.file < o.file
	}
	return k.rank < o.rank
}

// Choose evaluates every legal move of mover one ply deep and returns the
// one with the largest score, per §4.6. Ties are broken by tieKey; equal
// keys (as for two moves of the same piece) keep whichever was found
// first. Noise, if non-zero, is added to each candidate's score before
// comparison. Reports false if mover has no legal move. Only the side to
// move carries legal-move lists, so mover must be the board's side to move.
func Choose(b *board.Board, mover board.Color, noise Random) (Choice, bool) {
	best := Choice{Score: NoMove}
	var bestKey tieKey
	found := false

	for _, p := range b.Pieces(mover) {
		for _, t := range p.Targets {
			mv, err := b.Make(p, t)
			if err != nil {
				panic("eval: generated target rejected by Make: " + err.Error())
			}
			_ = mv

			score := Evaluate(b, mover) + noise.Next()
			b.Undo()

			key := tieKey{id: p.ID, file: mv.From.File, rank: mv.From.Rank}

			if score > best.Score || (score == best.Score && (!found || key.less(bestKey))) {
				best = Choice{Piece: p, Target: t, Score: score}
				bestKey = key
				found = true
			}
		}
	}

	return best, found
}
