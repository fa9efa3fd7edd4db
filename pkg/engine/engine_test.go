package engine_test

import (
	"context"
	"testing"

	"github.com/lucas0201/noirmate/pkg/board"
	"github.com/lucas0201/noirmate/pkg/engine"
	"github.com/lucas0201/noirmate/pkg/situation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "noirmate", "lucas0201")

	assert.Contains(t, e.Position(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.False(t, e.SideToMoveIsEngine())
	assert.Equal(t, situation.Play, e.Situation())
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "noirmate", "lucas0201")

	_, err := e.Move(ctx, "e2e5")
	assert.Error(t, err)
}

func TestMoveAppliesLegalMoveAndFlipsSideToMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "noirmate", "lucas0201")

	mv, err := e.Move(ctx, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank2), mv.From)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank4), mv.To)
	assert.True(t, e.SideToMoveIsEngine())
}

func TestEngineMovePicksAReplyForBlack(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "noirmate", "lucas0201")

	_, err := e.Move(ctx, "e2e4")
	require.NoError(t, err)

	mv, ok := e.EngineMove(ctx)
	require.True(t, ok)
	assert.Equal(t, board.Black, mv.Piece.Color())
	assert.False(t, e.SideToMoveIsEngine())
}

func TestResetToArbitraryPositionAndDetectStalemate(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "noirmate", "lucas0201")

	require.NoError(t, e.Reset(ctx, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	assert.Equal(t, situation.Stalemate, e.Situation())

	_, ok := e.EngineMove(ctx)
	assert.False(t, ok)
}

func TestPromotionMoveRequiresChoiceHonoredByCore(t *testing.T) {
	// S5
	ctx := context.Background()
	e := engine.New(ctx, "noirmate", "lucas0201")
	require.NoError(t, e.Reset(ctx, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"))

	mv, err := e.Move(ctx, "a7a8q")
	require.NoError(t, err)
	assert.Equal(t, board.PromoteQueen, mv.Kind)
	assert.Contains(t, e.Position(), "Q3k3/8")
}

func TestEnPassantMoveThroughEngineAPI(t *testing.T) {
	// S6
	ctx := context.Background()
	e := engine.New(ctx, "noirmate", "lucas0201")
	require.NoError(t, e.Reset(ctx, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))

	mv, err := e.Move(ctx, "e5d6")
	require.NoError(t, err)
	assert.Equal(t, board.EnPassant, mv.Kind)
	assert.Nil(t, e.Board().At(board.NewSquare(board.FileD, board.Rank5)))
}
