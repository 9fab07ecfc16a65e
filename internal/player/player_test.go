package player

import (
	"io"
	"testing"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Build(t *testing.T) {
	factory := NewFactory(newTestRand(), &mockCoordinateReader{}, io.Discard)

	tests := []struct {
		name     string
		expected Player
	}{
		{name: "human", expected: &humanPlayer{}},
		{name: "random", expected: &randomPlayer{}},
		{name: "whatever", expected: &randomPlayer{}},
		{name: "row-heuristic", expected: &cleverPlayer{}},
		{name: "Clever", expected: &cleverPlayer{}},
		{name: "column-heuristic", expected: &geniusPlayer{}},
		{name: " GENIUS ", expected: &geniusPlayer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, err := factory.Build(tt.name)

			require.NoError(t, err)
			assert.IsType(t, tt.expected, player)
		})
	}

	t.Run("Unknown name", func(t *testing.T) {
		player, err := factory.Build("grandmaster")

		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
		assert.Contains(t, err.Error(), "grandmaster")
		assert.Nil(t, player)
	})
}

func TestFactory_BuildsIndependentPlayers(t *testing.T) {
	// Given: two clever players from the same factory
	factory := NewFactory(newTestRand(), &mockCoordinateReader{}, io.Discard)

	first, err := factory.Build(RowHeuristicType)
	require.NoError(t, err)

	second, err := factory.Build(RowHeuristicType)
	require.NoError(t, err)

	// Then: they hold no shared move state
	board := entity.NewBoard(3)
	move, err := first.PlayTurn(board, entity.PlayerX)
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)

	move, err = second.PlayTurn(board, entity.PlayerO)
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 1, Col: 0}, move)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, RandomType, Canonical("Whatever"))
	assert.Equal(t, RowHeuristicType, Canonical("clever"))
	assert.Equal(t, ColumnHeuristicType, Canonical("genius"))
	assert.Equal(t, HumanType, Canonical("HUMAN"))
	assert.Equal(t, "unknown", Canonical("unknown"))
}
