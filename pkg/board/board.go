// Package board contains the chess position model: squares, piece
// identities, legal-move generation, the attack oracle, and the make/undo
// engine that mutates a Board in place.
package board

import (
	"fmt"
)

// Piece is a single occupant of the board: its identity, its current
// square, and — when it belongs to the side to move — its sorted list of
// currently-legal targets. The list is only meaningful for the side whose
// turn it is; RecomputeLegalMoves fills it in and clears the other side's.
type Piece struct {
	ID      ID
	Square  Square
	Targets []Target
}

// HasTarget reports whether t is present in the piece's sorted legal-move
// list, using binary search as required by the piece-list ordering
// invariant.
func (p *Piece) HasTarget(t Target) bool {
	_, ok := p.findTarget(t)
	return ok
}

func (p *Piece) findTarget(t Target) (int, bool) {
	lo, hi := 0, len(p.Targets)
	for lo < hi {
		mid := (lo + hi) / 2
		if p.Targets[mid].Less(t) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(p.Targets) && p.Targets[lo] == t {
		return lo, true
	}
	return lo, false
}

// Board is the mutable chess position: an 8x8 grid of occupants, king
// locators, piece count, castling rights, en-passant target, clocks, and
// side to move. It is not safe for concurrent use.
type Board struct {
	squares [NumFiles][NumRanks]*Piece
	kings   [NumColors]*Piece
	nPieces int

	castling  Castling
	enPassant Square
	hasEP     bool

	halfMoveClock  int
	fullMoveNumber int
	sideToMove     Color

	lastMove Move
	hasLast  bool

	pending *pendingUndo
}

// NewEmpty returns an empty board ready for Place calls, as used by FEN
// decoding.
func NewEmpty() *Board {
	return &Board{}
}

// Place puts a piece of the given identity on sq. It must be called before
// any move generation or Make/Undo call; it does not update castling or
// en-passant state (the FEN codec does that separately).
func (b *Board) Place(id ID, sq Square) {
	p := &Piece{ID: id, Square: sq}
	b.squares[sq.File][sq.Rank] = p
	b.nPieces++
	if id.Kind() == King {
		b.kings[id.Color()] = p
	}
}

// SetCastling, SetEnPassant, SetClocks, SetSideToMove configure state parsed
// from a FEN record. They must be called once, before the first legal-move
// generation.
func (b *Board) SetCastling(c Castling)      { b.castling = c }
func (b *Board) SetEnPassant(sq Square, ok bool) {
	b.enPassant, b.hasEP = sq, ok
}
func (b *Board) SetClocks(half, full int) {
	b.halfMoveClock, b.fullMoveNumber = half, full
}
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

func (b *Board) Castling() Castling      { return b.castling }
func (b *Board) EnPassant() (Square, bool) { return b.enPassant, b.hasEP }
func (b *Board) HalfMoveClock() int      { return b.halfMoveClock }
func (b *Board) FullMoveNumber() int     { return b.fullMoveNumber }
func (b *Board) SideToMove() Color       { return b.sideToMove }
func (b *Board) NumPieces() int          { return b.nPieces }

// King returns the piece record of the given color's king. Exactly one
// exists at all times during play.
func (b *Board) King(c Color) *Piece {
	return b.kings[c]
}

// At returns the occupant of sq, or nil if empty.
func (b *Board) At(sq Square) *Piece {
	return b.squares[sq.File][sq.Rank]
}

// LastMove returns the most recently applied move, if any.
func (b *Board) LastMove() (Move, bool) {
	return b.lastMove, b.hasLast
}

// Pieces returns every piece currently on the board belonging to c, in no
// particular order.
func (b *Board) Pieces(c Color) []*Piece {
	var out []*Piece
	for f := ZeroFile; f < NumFiles; f++ {
		for r := ZeroRank; r < NumRanks; r++ {
			if p := b.squares[f][r]; p != nil && p.ID.Color() == c {
				out = append(out, p)
			}
		}
	}
	return out
}

func (b *Board) remove(sq Square) *Piece {
	p := b.squares[sq.File][sq.Rank]
	if p == nil {
		return nil
	}
	b.squares[sq.File][sq.Rank] = nil
	return p
}

func (b *Board) place(p *Piece, sq Square) {
	p.Square = sq
	b.squares[sq.File][sq.Rank] = p
}

func (b *Board) String() string {
	return fmt.Sprintf("board{turn=%v, castling=%v, ep=%v, half=%v, full=%v, pieces=%v}",
		b.sideToMove, b.castling, b.enPassant, b.halfMoveClock, b.fullMoveNumber, b.nPieces)
}
