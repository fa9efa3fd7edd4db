// Package fen decodes and encodes chess positions in Forsyth-Edwards
// Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucas0201/noirmate/pkg/board"
)

const (
	// Initial is the FEN of the standard starting position.
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode parses a FEN record into a new Board. The side to move's legal
// moves are populated before return.
func Decode(rec string) (*board.Board, error) {
	parts := strings.Split(strings.TrimSpace(rec), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", rec)
	}

	b := board.NewEmpty()

	// (1) Piece placement, ranks 8 down to 1, files a through h.

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != int(board.NumRanks) {
		return nil, fmt.Errorf("invalid number of ranks in FEN: %q", rec)
	}
	for i, row := range ranks {
		rank := board.Rank(int(board.NumRanks) - 1 - i)
		file := board.ZeroFile
		for _, r := range row {
			switch {
			case r >= '1' && r <= '8':
				file += board.File(r - '0')
			default:
				id, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, rec)
				}
				if !file.IsValid() {
					return nil, fmt.Errorf("rank overflow in FEN: %q", rec)
				}
				b.Place(id, board.NewSquare(file, rank))
				file++
			}
		}
		if file != board.NumFiles {
			return nil, fmt.Errorf("incomplete rank in FEN: %q", rec)
		}
	}

	// (2) Active color.

	active, ok := board.ParseColor(runeAt(parts[1], 0))
	if !ok || len(parts[1]) != 1 {
		return nil, fmt.Errorf("invalid active color in FEN: %q", rec)
	}
	b.SetSideToMove(active)

	// (3) Castling availability.

	castling, err := board.ParseCastling(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid castling in FEN %q: %w", rec, err)
	}
	b.SetCastling(castling)

	// (4) En-passant target square.

	if parts[3] == "-" {
		b.SetEnPassant(board.Square{}, false)
	} else {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN %q: %w", rec, err)
		}
		b.SetEnPassant(sq, true)
	}

	// (5) Half-move clock.

	half, err := strconv.Atoi(parts[4])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("invalid half-move clock in FEN: %q", rec)
	}

	// (6) Full-move number.

	full, err := strconv.Atoi(parts[5])
	if err != nil || full < 1 {
		return nil, fmt.Errorf("invalid full-move number in FEN: %q", rec)
	}
	b.SetClocks(half, full)

	b.RecomputeLegalMoves(active)

	return b, nil
}

// Encode renders b in canonical FEN form: the same field order, empty-run
// digits, and explicit "-" for absent castling rights or en-passant target.
func Encode(b *board.Board) string {
	var sb strings.Builder
	for i := 0; i < int(board.NumRanks); i++ {
		rank := board.Rank(int(board.NumRanks) - 1 - i)
		blanks := 0
		for file := board.ZeroFile; file < board.NumFiles; file++ {
			p := b.At(board.NewSquare(file, rank))
			if p == nil {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(printPiece(p.ID))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if i < int(board.NumRanks)-1 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		sb.String(), b.SideToMove(), b.Castling(), ep, b.HalfMoveClock(), b.FullMoveNumber())
}

func runeAt(s string, i int) rune {
	if i >= len(s) {
		return 0
	}
	return []rune(s)[i]
}

func parsePiece(r rune) (board.ID, bool) {
	k, ok := board.ParseKind(r)
	if !ok {
		return 0, false
	}
	c := board.White
	if r >= 'a' && r <= 'z' {
		c = board.Black
	}
	return board.NewID(c, k), true
}

func printPiece(id board.ID) string {
	return id.String()
}
