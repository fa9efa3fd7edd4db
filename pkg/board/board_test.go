package board_test

import (
	"testing"

	"github.com/lucas0201/noirmate/pkg/board"
	"github.com/lucas0201/noirmate/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) *board.Board {
	t.Helper()
	b, err := fen.Decode(s)
	require.NoError(t, err)
	return b
}

func TestInitialPositionMoveCount(t *testing.T) {
	b := mustDecode(t, fen.Initial)

	total := 0
	for _, p := range b.Pieces(board.White) {
		total += len(p.Targets)
	}
	assert.Equal(t, 20, total)
}

func TestPieceListsAreSorted(t *testing.T) {
	b := mustDecode(t, fen.Initial)
	for _, p := range b.Pieces(board.White) {
		for i := 1; i < len(p.Targets); i++ {
			assert.True(t, p.Targets[i-1].Less(p.Targets[i]) || p.Targets[i-1] == p.Targets[i],
				"targets not sorted for %v: %v", p.ID, p.Targets)
		}
	}
}

func TestMakeUndoRestoresPosition(t *testing.T) {
	b := mustDecode(t, fen.Initial)
	before := fen.Encode(b)

	p := b.At(board.NewSquare(board.FileE, board.Rank2))
	require.NotNil(t, p)

	var target board.Target
	found := false
	for _, t2 := range p.Targets {
		if t2.Square == board.NewSquare(board.FileE, board.Rank4) {
			target, found = t2, true
		}
	}
	require.True(t, found)

	_, err := b.Make(p, target)
	require.NoError(t, err)
	assert.NotEqual(t, before, fen.Encode(b))

	b.Undo()
	assert.Equal(t, before, fen.Encode(b))
}

func TestNoMoveLeavesOwnKingAttacked(t *testing.T) {
	// White king in check from the black rook on e2; every king move the
	// generator offers must leave the king unattacked.
	b := mustDecode(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	king := b.King(board.White)
	for _, target := range king.Targets {
		_, err := b.Make(king, target)
		require.NoError(t, err)
		attacked := board.Threat(b, b.King(board.White).Square, board.Black)
		b.Undo()
		assert.False(t, attacked)
	}
}

func TestCastlingRequiresRightsAndSafety(t *testing.T) {
	b := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	king := b.King(board.White)

	kingside := false
	queenside := false
	for _, t := range king.Targets {
		if t.Square == board.NewSquare(board.FileG, board.Rank1) {
			kingside = true
		}
		if t.Square == board.NewSquare(board.FileC, board.Rank1) {
			queenside = true
		}
	}
	assert.True(t, kingside)
	assert.True(t, queenside)
}

func TestCastlingBlockedByAttackedTransitSquare(t *testing.T) {
	// Black rook on f8 attacks f1, so white cannot castle kingside.
	b := mustDecode(t, "5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	king := b.King(board.White)
	for _, t := range king.Targets {
		assert.NotEqual(t, board.NewSquare(board.FileG, board.Rank1), t.Square)
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	b := mustDecode(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	pawn := b.At(board.NewSquare(board.FileE, board.Rank5))
	require.NotNil(t, pawn)

	var target board.Target
	for _, t := range pawn.Targets {
		if t.Kind == board.EnPassant {
			target = t
		}
	}
	require.Equal(t, board.EnPassant, target.Kind)

	_, err := b.Make(pawn, target)
	require.NoError(t, err)

	assert.Nil(t, b.At(board.NewSquare(board.FileD, board.Rank5)))
	assert.Equal(t, 0, b.HalfMoveClock())
	_, hasEP := b.EnPassant()
	assert.False(t, hasEP)
}

func TestPromotionChoiceHonored(t *testing.T) {
	b := mustDecode(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	pawn := b.At(board.NewSquare(board.FileA, board.Rank7))
	require.NotNil(t, pawn)

	var target board.Target
	for _, t := range pawn.Targets {
		if t.Kind == board.PromoteQueen {
			target = t
		}
	}
	require.Equal(t, board.PromoteQueen, target.Kind)

	_, err := b.Make(pawn, target)
	require.NoError(t, err)

	result := fen.Encode(b)
	assert.Contains(t, result, "Q3k3/8")
	_, hasEP := b.EnPassant()
	assert.False(t, hasEP)
	assert.Equal(t, 0, b.HalfMoveClock())
}

func TestAnyKingMoveClearsBothCastlingRights(t *testing.T) {
	b := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	king := b.King(board.White)

	var quiet board.Target
	for _, t := range king.Targets {
		if t.Kind == board.Quiet && t.Square == board.NewSquare(board.FileD, board.Rank1) {
			quiet = t
		}
	}
	require.Equal(t, board.Quiet, quiet.Kind)

	_, err := b.Make(king, quiet)
	require.NoError(t, err)
	assert.False(t, b.Castling().IsAllowed(board.WhiteKingSideCastle))
	assert.False(t, b.Castling().IsAllowed(board.WhiteQueenSideCastle))
}
