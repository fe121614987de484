package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	for size := 1; size <= 6; size++ {
		board, err := NewBoard(size)
		require.NoError(t, err)
		require.Equal(t, size, board.Size())

		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				mark, err := board.MarkAt(r, c)
				require.NoError(t, err)
				assert.Equal(t, None, mark, "cell (%d, %d) of a %dx%d board", r, c, size, size)
			}
		}
	}
}

func TestNewBoard_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		board, err := NewBoard(size)
		assert.Nil(t, board)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places on an empty cell", func(t *testing.T) {
		board, _ := NewBoard(4)

		require.True(t, board.Place(PlayerX, 0, 0))

		mark, err := board.MarkAt(0, 0)
		require.NoError(t, err)
		assert.Equal(t, PlayerX, mark)
	})

	t.Run("Occupied cell keeps its mark", func(t *testing.T) {
		board, _ := NewBoard(4)
		require.True(t, board.Place(PlayerX, 1, 2))

		assert.False(t, board.Place(PlayerO, 1, 2))
		assert.False(t, board.Place(PlayerX, 1, 2))

		mark, _ := board.MarkAt(1, 2)
		assert.Equal(t, PlayerX, mark)
	})

	t.Run("Out of range never mutates", func(t *testing.T) {
		board, _ := NewBoard(4)
		before := board.Snapshot()

		positions := [][2]int{{-1, 0}, {4, 0}, {5, 0}, {0, -1}, {0, 4}, {0, 5}, {-1, -1}, {4, 4}}
		for _, p := range positions {
			assert.False(t, board.Place(PlayerX, p[0], p[1]), "position %v", p)
		}

		assert.Equal(t, before, board.Snapshot())
	})

	t.Run("Rejects the empty mark", func(t *testing.T) {
		board, _ := NewBoard(3)

		assert.False(t, board.Place(None, 0, 0))
		assert.True(t, board.Place(PlayerO, 0, 0))
	})
}

func TestBoard_MarkAt_OutOfBounds(t *testing.T) {
	board, _ := NewBoard(3)

	_, err := board.MarkAt(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = board.MarkAt(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBoard_Snapshot(t *testing.T) {
	board, _ := NewBoard(2)
	board.Place(PlayerX, 0, 1)

	snapshot := board.Snapshot()
	require.Equal(t, [][]PlayerMark{{None, PlayerX}, {None, None}}, snapshot)

	// Writing to the copy leaves the board alone.
	snapshot[1][1] = PlayerO
	mark, _ := board.MarkAt(1, 1)
	assert.Equal(t, None, mark)
}
