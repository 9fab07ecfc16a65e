package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCells(board *Board) [][]Mark {
	return board.Snapshot().Cells
}

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard(3)

	// Then: every cell is empty and nothing is filled
	assert.Equal(t, 3, board.Size())
	assert.Equal(t, 0, board.Filled())
	assert.False(t, board.IsFull())

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.Equal(t, EmptyCell, board.Mark(row, col))
		}
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark into an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(4)
		before := allCells(board)

		// When: X is placed at (2, 1)
		ok := board.Place(PlayerX, 2, 1)

		// Then: only that cell changes
		require.True(t, ok)
		assert.Equal(t, PlayerX, board.Mark(2, 1))
		assert.Equal(t, 1, board.Filled())

		before[2][1] = PlayerX
		assert.Equal(t, before, allCells(board))
	})

	t.Run("Refuses an occupied cell", func(t *testing.T) {
		// Given: a board where (0, 0) already holds X
		board := NewBoard(3)
		require.True(t, board.Place(PlayerX, 0, 0))
		before := allCells(board)

		// When: O tries the same cell
		ok := board.Place(PlayerO, 0, 0)

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, allCells(board))
		assert.Equal(t, 1, board.Filled())
	})

	t.Run("Refuses coordinates outside the board", func(t *testing.T) {
		board := NewBoard(3)
		before := allCells(board)

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
			assert.False(t, board.Place(PlayerX, move.Row, move.Col), "move %v", move)
		}

		assert.Equal(t, before, allCells(board))
		assert.Equal(t, 0, board.Filled())
	})

	t.Run("Refuses to place an empty mark", func(t *testing.T) {
		board := NewBoard(3)
		require.True(t, board.Place(PlayerO, 1, 1))

		assert.False(t, board.Place(EmptyCell, 1, 1))
		assert.False(t, board.Place(EmptyCell, 0, 0))
		assert.Equal(t, PlayerO, board.Mark(1, 1))
	})
}

func TestBoard_Mark(t *testing.T) {
	// Given: a board with a single mark
	board := NewBoard(2)
	require.True(t, board.Place(PlayerO, 1, 0))

	// Then: out of range reads are empty instead of failing
	assert.Equal(t, PlayerO, board.Mark(1, 0))
	assert.Equal(t, EmptyCell, board.Mark(-1, 0))
	assert.Equal(t, EmptyCell, board.Mark(2, 0))
	assert.Equal(t, EmptyCell, board.Mark(0, 5))
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 2x2 board
	board := NewBoard(2)

	// When: three cells are filled
	require.True(t, board.Place(PlayerX, 0, 0))
	require.True(t, board.Place(PlayerO, 0, 1))
	require.True(t, board.Place(PlayerX, 1, 0))

	// Then: the board is not full yet
	assert.False(t, board.IsFull())

	// When: the last cell is filled
	require.True(t, board.Place(PlayerO, 1, 1))

	// Then: the board is full
	assert.True(t, board.IsFull())
	assert.Equal(t, 4, board.Filled())
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board with one mark and its snapshot
	board := NewBoard(2)
	require.True(t, board.Place(PlayerX, 0, 1))
	snapshot := board.Snapshot()

	// When: the snapshot is modified
	snapshot.Cells[0][0] = PlayerO

	// Then: the board is untouched
	assert.Equal(t, 2, snapshot.Size)
	assert.Equal(t, PlayerX, snapshot.Cells[0][1])
	assert.Equal(t, EmptyCell, board.Mark(0, 0))
}
