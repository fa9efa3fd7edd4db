package board_test

import (
	"testing"

	"github.com/lucas0201/noirmate/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank3.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(8).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileB.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
}

func TestSquare(t *testing.T) {
	sq, err := board.ParseSquareStr("c2")
	assert.NoError(t, err)
	assert.Equal(t, board.NewSquare(board.FileC, board.Rank2), sq)

	assert.True(t, board.NewSquare(board.FileH, board.Rank1).IsValid())
	assert.True(t, board.NewSquare(board.FileA, board.Rank8).IsValid())

	assert.Equal(t, "h1", board.NewSquare(board.FileH, board.Rank1).String())
	assert.Equal(t, "a1", board.NewSquare(board.FileA, board.Rank1).String())

	_, err = board.ParseSquareStr("i9")
	assert.Error(t, err)
}

func TestSquareLess(t *testing.T) {
	a1 := board.NewSquare(board.FileA, board.Rank1)
	a2 := board.NewSquare(board.FileA, board.Rank2)
	b1 := board.NewSquare(board.FileB, board.Rank1)

	assert.True(t, a1.Less(a2))
	assert.True(t, a1.Less(b1))
	assert.True(t, a2.Less(b1))
	assert.False(t, a1.Less(a1))
}
