// Package situation classifies the current game position into a terminal
// result or an ongoing game, per §4.5.
package situation

import "github.com/lucas0201/noirmate/pkg/board"

// Situation is the outcome of classifying a position. Mirrors the original
// engine's Gamesit enum (PLAY, W_WINS, B_WINS, STALEMATE, FIFTY, MATERIAL,
// REPETITION).
type Situation uint8

const (
	Play Situation = iota
	CheckmateWhite
	CheckmateBlack
	Stalemate
	FiftyMove
	InsufficientMaterial
	ThreefoldRepetition
)

func (s Situation) String() string {
	switch s {
	case Play:
		return "play"
	case CheckmateWhite:
		return "checkmate (white wins)"
	case CheckmateBlack:
		return "checkmate (black wins)"
	case Stalemate:
		return "stalemate"
	case FiftyMove:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "?"
	}
}

// IsTerminal reports whether s ends the game.
func (s Situation) IsTerminal() bool {
	return s != Play
}

// repetitionCount is satisfied by *repetition.Store without this package
// importing it directly, keeping the classifier's dependency surface to
// just what it needs.
type repetitionCount interface {
	Count(fenPrefix string) int
}

// Classify decides PLAY / CHECKMATE / STALEMATE / FIFTY / INSUFFICIENT
// MATERIAL / THREEFOLD for the current position, in the precedence order of
// §4.5: repetition, then material, then mate/stalemate, then fifty-move.
func Classify(b *board.Board, rep repetitionCount, fenPrefix string) Situation {
	if rep != nil && rep.Count(fenPrefix) > 2 {
		return ThreefoldRepetition
	}

	if b.NumPieces() <= 3 && onlyMinorOrNone(b) {
		return InsufficientMaterial
	}

	side := b.SideToMove()
	if !anyLegalMove(b, side) {
		if board.Threat(b, b.King(side).Square, side.Opponent()) {
			if side == board.White {
				return CheckmateBlack
			}
			return CheckmateWhite
		}
		return Stalemate
	}

	if b.HalfMoveClock() >= 50 {
		return FiftyMove
	}

	return Play
}

// onlyMinorOrNone reports whether, beyond the two kings, the board holds at
// most one piece and it is a bishop or knight. This intentionally preserves
// the limited recognition of §9 open question 2: K+B-vs-B-same-color and
// K+N+N-vs-K are not detected.
func onlyMinorOrNone(b *board.Board) bool {
	extra := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for _, p := range b.Pieces(c) {
			if p.ID.Kind() == board.King {
				continue
			}
			extra++
			if p.ID.Kind() != board.Bishop && p.ID.Kind() != board.Knight {
				return false
			}
		}
	}
	return extra <= 1
}

func anyLegalMove(b *board.Board, c board.Color) bool {
	for _, p := range b.Pieces(c) {
		if len(p.Targets) > 0 {
			return true
		}
	}
	return false
}
