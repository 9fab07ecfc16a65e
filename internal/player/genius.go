package player

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

type geniusPlayer struct {
	fallback Player
}

// NewGeniusPlayer - the column heuristic: first empty cell of column 1, then of row 1,
// and the clever player's choice otherwise.
func NewGeniusPlayer(rand *rand.Rand) Player {
	return &geniusPlayer{
		fallback: NewCleverPlayer(rand),
	}
}

func (that *geniusPlayer) PlayTurn(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	size := board.Size()

	if move, ok := playFirstEmpty(board, mark, size, func(i int) entity.Move {
		return entity.Move{Row: i, Col: 1}
	}); ok {
		return move, nil
	}

	if move, ok := playFirstEmpty(board, mark, size, func(i int) entity.Move {
		return entity.Move{Row: 1, Col: i}
	}); ok {
		return move, nil
	}

	return that.fallback.PlayTurn(board, mark)
}
