package player

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCoordinateReader struct {
	mock.Mock
}

func (that *mockCoordinateReader) ReadCoordinate() (int, error) {
	args := that.Called()
	return args.Int(0), args.Error(1)
}

func TestHumanPlayer_PlayTurn(t *testing.T) {
	t.Run("Decodes row and column from the coordinate", func(t *testing.T) {
		// Given: the user types 21
		input := &mockCoordinateReader{}
		input.On("ReadCoordinate").Return(21, nil).Once()

		var out bytes.Buffer
		board := entity.NewBoard(3)

		// When: the human player takes its turn
		move, err := NewHumanPlayer(input, &out).PlayTurn(board, entity.PlayerO)

		// Then: O is placed at row 2, column 1
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 1}, move)
		assert.Equal(t, entity.PlayerO, board.Mark(2, 1))
		assert.Equal(t, "Player O, type coordinates: \n", out.String())
		input.AssertExpectations(t)
	})

	t.Run("Asks again after an occupied or invalid cell", func(t *testing.T) {
		// Given: (0, 0) is taken and the user types 0, then 39, then 11
		input := &mockCoordinateReader{}
		input.On("ReadCoordinate").Return(0, nil).Once()
		input.On("ReadCoordinate").Return(39, nil).Once()
		input.On("ReadCoordinate").Return(11, nil).Once()

		var out bytes.Buffer
		board := entity.NewBoard(3)
		require.True(t, board.Place(entity.PlayerO, 0, 0))

		// When: the human player takes its turn
		move, err := NewHumanPlayer(input, &out).PlayTurn(board, entity.PlayerX)

		// Then: each failure is reported with its own message
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)

		expected := fmt.Sprintf("Player X, type coordinates: \n%s\n%s\n", occupiedCoordinate, invalidCoordinate)
		assert.Equal(t, expected, out.String())
		assert.Equal(t, 2, board.Filled())
		input.AssertExpectations(t)
	})

	t.Run("Treats malformed input as an invalid position", func(t *testing.T) {
		input := &mockCoordinateReader{}
		input.On("ReadCoordinate").Return(0, fmt.Errorf("%w: %q", ErrMalformedInput, "abc")).Once()
		input.On("ReadCoordinate").Return(-1, nil).Once()
		input.On("ReadCoordinate").Return(2, nil).Once()

		var out bytes.Buffer
		board := entity.NewBoard(3)

		move, err := NewHumanPlayer(input, &out).PlayTurn(board, entity.PlayerX)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
		assert.Contains(t, out.String(), invalidCoordinate+"\n"+invalidCoordinate+"\n")
		assert.Equal(t, 1, board.Filled())
	})

	t.Run("Returns an error when the input is closed", func(t *testing.T) {
		// Given: the input stream ended
		input := &mockCoordinateReader{}
		input.On("ReadCoordinate").Return(0, io.EOF).Once()

		board := entity.NewBoard(3)

		// When: the human player takes its turn
		_, err := NewHumanPlayer(input, io.Discard).PlayTurn(board, entity.PlayerX)

		// Then: the error is propagated and the board is unchanged
		require.Error(t, err)
		assert.True(t, errors.Is(err, io.EOF))
		assert.Equal(t, 0, board.Filled())
	})
}
