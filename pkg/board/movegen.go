package board

// RecomputeLegalMoves regenerates the sorted legal-move list for every
// piece of color c and clears the other color's lists, matching §3's
// "recomputed whenever it is the piece's owner's turn." Callers normally
// reach this only indirectly, through Make/Undo, but it is exported for
// FEN decoding, which must seed the initial side to move's lists.
func (b *Board) RecomputeLegalMoves(c Color) {
	b.recomputeLegalMoves(c)
}

func (b *Board) recomputeLegalMoves(c Color) {
	for f := ZeroFile; f < NumFiles; f++ {
		for r := ZeroRank; r < NumRanks; r++ {
			p := b.squares[f][r]
			if p == nil {
				continue
			}
			if p.ID.Color() != c {
				p.Targets = nil
				continue
			}
			p.Targets = b.generate(p, true)
		}
	}
}

// generate computes p's pseudo-legal (or, when checkSafety is true,
// strictly legal) move list per §4.1, sorted per §3's canonical ordering.
func (b *Board) generate(p *Piece, checkSafety bool) []Target {
	var out []Target
	switch p.ID.Kind() {
	case King:
		b.genKing(p, checkSafety, &out)
	case Queen:
		b.genRay(p, rookDirs, checkSafety, &out)
		b.genRay(p, bishopDirs, checkSafety, &out)
	case Rook:
		b.genRay(p, rookDirs, checkSafety, &out)
	case Bishop:
		b.genRay(p, bishopDirs, checkSafety, &out)
	case Knight:
		b.genKnight(p, checkSafety, &out)
	case Pawn:
		b.genPawn(p, checkSafety, &out)
	}
	sortTargets(out)
	return out
}

func sortTargets(ts []Target) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j].Less(ts[j-1]); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
}

// appendIfSafe appends a candidate target, applying and rolling back the
// move to test for self-check when checkSafety is set, per §4.1.
func (b *Board) appendIfSafe(p *Piece, sq Square, kind TargetKind, checkSafety bool, out *[]Target) {
	t := Target{Square: sq, Kind: kind}
	if checkSafety {
		color := p.ID.Color()
		rec := b.applyRaw(p, t)
		attacked := Threat(b, b.kings[color].Square, color.Opponent())
		b.undoRaw(p, rec)
		if attacked {
			return
		}
	}
	*out = append(*out, t)
}

func targetKindFor(b *Board, sq Square, mover Color) TargetKind {
	occ := b.At(sq)
	if occ == nil {
		return Quiet
	}
	if occ.ID.Color() != mover {
		return Capture
	}
	return Quiet // caller must not reach own-piece squares; guarded before calling
}

func (b *Board) genKing(p *Piece, checkSafety bool, out *[]Target) {
	color := p.ID.Color()
	for _, d := range kingDirs {
		sq, ok := shift(p.Square, d)
		if !ok {
			continue
		}
		if occ := b.At(sq); occ != nil && occ.ID.Color() == color {
			continue
		}
		b.appendIfSafe(p, sq, targetKindFor(b, sq, color), checkSafety, out)
	}

	if !checkSafety {
		return
	}
	opp := color.Opponent()
	if Threat(b, p.Square, opp) {
		return
	}
	rank := p.Square.Rank

	if b.castling.IsAllowed(KingSideRight(color)) {
		f, g := NewSquare(FileF, rank), NewSquare(FileG, rank)
		if b.At(f) == nil && b.At(g) == nil && !Threat(b, f, opp) {
			b.appendIfSafe(p, g, Quiet, true, out)
		}
	}
	if b.castling.IsAllowed(QueenSideRight(color)) {
		bq, c, d := NewSquare(FileB, rank), NewSquare(FileC, rank), NewSquare(FileD, rank)
		if b.At(bq) == nil && b.At(c) == nil && b.At(d) == nil && !Threat(b, d, opp) {
			b.appendIfSafe(p, c, Quiet, true, out)
		}
	}
}

func (b *Board) genKnight(p *Piece, checkSafety bool, out *[]Target) {
	color := p.ID.Color()
	for _, d := range knightDirs {
		sq, ok := shift(p.Square, d)
		if !ok {
			continue
		}
		if occ := b.At(sq); occ != nil && occ.ID.Color() == color {
			continue
		}
		b.appendIfSafe(p, sq, targetKindFor(b, sq, color), checkSafety, out)
	}
}

func (b *Board) genRay(p *Piece, dirs []offset, checkSafety bool, out *[]Target) {
	color := p.ID.Color()
	for _, d := range dirs {
		cur := p.Square
		for {
			sq, ok := shift(cur, d)
			if !ok {
				break
			}
			occ := b.At(sq)
			if occ == nil {
				b.appendIfSafe(p, sq, Quiet, checkSafety, out)
				cur = sq
				continue
			}
			if occ.ID.Color() != color {
				b.appendIfSafe(p, sq, Capture, checkSafety, out)
			}
			break
		}
	}
}

func (b *Board) genPawn(p *Piece, checkSafety bool, out *[]Target) {
	color := p.ID.Color()
	dr := 1
	startRank, promoRank := Rank2, Rank8
	if color == Black {
		dr, startRank, promoRank = -1, Rank7, Rank1
	}

	emit := func(sq Square, capture bool) {
		if sq.Rank == promoRank {
			kinds := []TargetKind{PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen}
			if capture {
				kinds = []TargetKind{CapturePromoteKnight, CapturePromoteBishop, CapturePromoteRook, CapturePromoteQueen}
			}
			for _, k := range kinds {
				b.appendIfSafe(p, sq, k, checkSafety, out)
			}
			return
		}
		kind := Quiet
		if capture {
			kind = Capture
		}
		b.appendIfSafe(p, sq, kind, checkSafety, out)
	}

	if one, ok := shift(p.Square, offset{0, dr}); ok && b.At(one) == nil {
		emit(one, false)
		if p.Square.Rank == startRank {
			if two, ok := shift(one, offset{0, dr}); ok && b.At(two) == nil {
				emit(two, false)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		sq, ok := shift(p.Square, offset{df, dr})
		if !ok {
			continue
		}
		if occ := b.At(sq); occ != nil {
			if occ.ID.Color() != color {
				emit(sq, true)
			}
			continue
		}
		if ep, has := b.EnPassant(); has && ep == sq {
			b.appendIfSafe(p, sq, EnPassant, checkSafety, out)
		}
	}
}
