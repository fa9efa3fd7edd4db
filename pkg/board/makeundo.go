package board

import "fmt"

// UndoRecord is the compact snapshot produced by a raw move application and
// consumed by its matching rollback. It never deep-clones piece objects,
// following §9's guidance: a captured piece's identity and square, the
// previous castling/en-passant/clock state, and (when the move was a
// castle) the rook's origin and destination.
type UndoRecord struct {
	From, To Square
	Kind     TargetKind
	MovedID  ID

	CapturedID     ID
	CapturedSquare Square

	PrevCastling      Castling
	PrevEnPassant     Square
	PrevHasEP         bool
	PrevHalfMoveClock int

	IsCastle         bool
	RookFrom, RookTo Square
}

// cornerRight returns the single castling right tied to a rook's home
// corner, or 0 if sq is not one of the four corners.
func cornerRight(sq Square) Castling {
	switch {
	case sq == NewSquare(FileA, Rank1):
		return WhiteQueenSideCastle
	case sq == NewSquare(FileH, Rank1):
		return WhiteKingSideCastle
	case sq == NewSquare(FileA, Rank8):
		return BlackQueenSideCastle
	case sq == NewSquare(FileH, Rank8):
		return BlackKingSideCastle
	default:
		return 0
	}
}

// applyRaw performs steps 1-8 of §4.3 on the board: it does not flip side to
// move, bump the full-move number, or recompute legal-move lists. It is the
// shared mutation primitive used both by the self-check filter during
// generation (where the ply boundary is irrelevant) and by the public Make.
func (b *Board) applyRaw(p *Piece, t Target) UndoRecord {
	color := p.ID.Color()
	kind := p.ID.Kind()

	rec := UndoRecord{
		From:              p.Square,
		To:                t.Square,
		Kind:              t.Kind,
		MovedID:           p.ID,
		PrevCastling:      b.castling,
		PrevEnPassant:     b.enPassant,
		PrevHasEP:         b.hasEP,
		PrevHalfMoveClock: b.halfMoveClock,
		CapturedID:        NoPieceID,
	}

	b.hasEP = false

	captured := false
	if t.Kind == EnPassant {
		capSq := t.Square
		if color == White {
			capSq = NewSquare(t.Square.File, t.Square.Rank-1)
		} else {
			capSq = NewSquare(t.Square.File, t.Square.Rank+1)
		}
		victim := b.remove(capSq)
		rec.CapturedID = victim.ID
		rec.CapturedSquare = capSq
		b.nPieces--
		b.halfMoveClock = 0
		captured = true
	} else if occ := b.At(t.Square); occ != nil {
		b.castling = b.castling.Clear(cornerRight(t.Square))
		b.remove(t.Square)
		rec.CapturedID = occ.ID
		rec.CapturedSquare = t.Square
		b.nPieces--
		b.halfMoveClock = 0
		captured = true
	}

	if !captured && kind == Pawn {
		rankDelta := int(t.Square.Rank) - int(p.Square.Rank)
		if rankDelta == 2 || rankDelta == -2 {
			mid := NewSquare(t.Square.File, Rank((int(p.Square.Rank)+int(t.Square.Rank))/2))
			b.enPassant, b.hasEP = mid, true
		}
		b.halfMoveClock = 0
	} else if !captured {
		b.halfMoveClock++
	}

	if kind == King {
		b.castling = b.castling.ClearColor(color)
		fileDelta := int(t.Square.File) - int(p.Square.File)
		if fileDelta == 2 || fileDelta == -2 {
			rec.IsCastle = true
			homeRank := p.Square.Rank
			if fileDelta == 2 {
				rec.RookFrom, rec.RookTo = NewSquare(FileH, homeRank), NewSquare(FileF, homeRank)
			} else {
				rec.RookFrom, rec.RookTo = NewSquare(FileA, homeRank), NewSquare(FileD, homeRank)
			}
			rook := b.remove(rec.RookFrom)
			b.place(rook, rec.RookTo)
		}
	} else if kind == Rook {
		b.castling = b.castling.Clear(cornerRight(p.Square))
	}

	b.remove(p.Square)
	b.place(p, t.Square)

	if t.Kind.IsPromotion() {
		p.ID = NewID(color, t.Kind.PromotionKind())
	}

	return rec
}

// undoRaw reverses applyRaw exactly, given the piece it moved and the
// snapshot it produced.
func (b *Board) undoRaw(p *Piece, rec UndoRecord) {
	if rec.Kind.IsPromotion() {
		p.ID = rec.MovedID
	}

	b.remove(rec.To)
	b.place(p, rec.From)

	if rec.IsCastle {
		rook := b.remove(rec.RookTo)
		b.place(rook, rec.RookFrom)
	}

	if rec.CapturedID != NoPieceID {
		captured := &Piece{ID: rec.CapturedID, Square: rec.CapturedSquare}
		b.squares[rec.CapturedSquare.File][rec.CapturedSquare.Rank] = captured
		b.nPieces++
	}

	b.castling = rec.PrevCastling
	b.enPassant, b.hasEP = rec.PrevEnPassant, rec.PrevHasEP
	b.halfMoveClock = rec.PrevHalfMoveClock
}

type pendingUndo struct {
	piece          *Piece
	rec            UndoRecord
	prevSideToMove Color
	prevFullMove   int
	prevLastMove   Move
	prevHasLast    bool
}

// Make applies a legal move: t must be present in p's current sorted
// target list (checked by binary search). It performs the full §4.3
// sequence, including the ply-boundary bookkeeping (full-move number,
// side to move, and recomputing the new side's legal moves) that applyRaw
// omits.
func (b *Board) Make(p *Piece, t Target) (Move, error) {
	if !p.HasTarget(t) {
		return Move{}, fmt.Errorf("illegal move: %v%v", p.ID, t)
	}

	prevSide, prevFull := b.sideToMove, b.fullMoveNumber
	prevLastMove, prevHasLast := b.lastMove, b.hasLast

	color := p.ID.Color()
	rec := b.applyRaw(p, t)

	if color == Black {
		b.fullMoveNumber++
	}
	b.sideToMove = color.Opponent()
	b.recomputeLegalMoves(b.sideToMove)

	mv := Move{
		Piece:     rec.MovedID,
		From:      rec.From,
		To:        rec.To,
		Kind:      rec.Kind,
		Captured:  rec.CapturedID,
		Promotion: t.Kind.PromotionKind(),
	}
	b.lastMove, b.hasLast = mv, true
	b.pending = &pendingUndo{
		piece:          p,
		rec:            rec,
		prevSideToMove: prevSide,
		prevFullMove:   prevFull,
		prevLastMove:   prevLastMove,
		prevHasLast:    prevHasLast,
	}
	return mv, nil
}

// Undo reverses the most recent Make exactly. It panics if no move is
// pending, since that indicates a caller bug (it is never invoked with
// mismatched data per §4.3).
func (b *Board) Undo() {
	if b.pending == nil {
		panic("board: Undo called with no pending move")
	}
	st := b.pending
	b.undoRaw(st.piece, st.rec)
	b.sideToMove = st.prevSideToMove
	b.fullMoveNumber = st.prevFullMove
	b.lastMove, b.hasLast = st.prevLastMove, st.prevHasLast
	b.recomputeLegalMoves(b.sideToMove)
	b.pending = nil
}
