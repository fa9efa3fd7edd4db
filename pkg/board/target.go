package board

import "fmt"

// TargetKind is the one-byte move-target flag alphabet from the FEN-adjacent
// move model: quiet, capture, en-passant, or one of the eight
// promotion/capture-promotion letters.
type TargetKind byte

const (
	Quiet     TargetKind = 0
	Capture   TargetKind = 'x'
	EnPassant TargetKind = 'e'

	PromoteKnight TargetKind = 'n'
	PromoteBishop TargetKind = 'b'
	PromoteRook   TargetKind = 'r'
	PromoteQueen  TargetKind = 'q'

	CapturePromoteKnight TargetKind = 'N'
	CapturePromoteBishop TargetKind = 'B'
	CapturePromoteRook   TargetKind = 'R'
	CapturePromoteQueen  TargetKind = 'Q'
)

// IsCapture reports whether applying a target of this kind removes an
// enemy piece (either by direct capture or en-passant).
func (k TargetKind) IsCapture() bool {
	switch k {
	case Capture, EnPassant, CapturePromoteKnight, CapturePromoteBishop, CapturePromoteRook, CapturePromoteQueen:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether a target of this kind mutates the mover's
// identity on arrival.
func (k TargetKind) IsPromotion() bool {
	switch k {
	case PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen,
		CapturePromoteKnight, CapturePromoteBishop, CapturePromoteRook, CapturePromoteQueen:
		return true
	default:
		return false
	}
}

// PromotionKind returns the piece kind a promotion target resolves to, or
// NoKind if this target kind carries no promotion.
func (k TargetKind) PromotionKind() Kind {
	switch k {
	case PromoteKnight, CapturePromoteKnight:
		return Knight
	case PromoteBishop, CapturePromoteBishop:
		return Bishop
	case PromoteRook, CapturePromoteRook:
		return Rook
	case PromoteQueen, CapturePromoteQueen:
		return Queen
	default:
		return NoKind
	}
}

// promoRank orders the four promotion kinds for tie-breaking records that
// land on the same destination square: knight, bishop, rook, queen, in the
// generator's emission order.
func (k TargetKind) promoRank() int {
	switch k.PromotionKind() {
	case Knight:
		return 1
	case Bishop:
		return 2
	case Rook:
		return 3
	case Queen:
		return 4
	default:
		return 0
	}
}

func (k TargetKind) String() string {
	if k == Quiet {
		return ""
	}
	return string(rune(k))
}

// Target is one entry of a piece's legal-move list: a destination square
// plus the flag describing how the move affects the board there.
type Target struct {
	Square Square
	Kind   TargetKind
}

// Less implements the canonical ordering of §3: by file, then rank, then
// promotion-kind identity. Non-promotion records compare equal on the third
// key, which is stable since a given (piece, destination) pair never emits
// more than one non-promotion record.
func (t Target) Less(o Target) bool {
	if t.Square.File != o.Square.File {
		return t.Square.File < o.Square.File
	}
	if t.Square.Rank != o.Square.Rank {
		return t.Square.Rank < o.Square.Rank
	}
	return t.Kind.promoRank() < o.Kind.promoRank()
}

func (t Target) String() string {
	return fmt.Sprintf("%v%v", t.Square, t.Kind)
}

// Move is the externally-visible description of an applied half-move,
// returned by Board.Make so a caller can report what happened without
// re-deriving it from a before/after diff.
type Move struct {
	Piece     ID
	From      Square
	To        Square
	Kind      TargetKind
	Captured  ID
	Promotion Kind
}

func (m Move) String() string {
	s := fmt.Sprintf("%v%v", m.From, m.To)
	if m.Promotion != NoKind {
		s += m.Promotion.String()[:1]
	}
	return s
}
