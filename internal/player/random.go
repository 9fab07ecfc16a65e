package player

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

type randomPlayer struct {
	rand *rand.Rand
}

// NewRandomPlayer - plays a uniformly random empty cell.
func NewRandomPlayer(rand *rand.Rand) Player {
	return &randomPlayer{
		rand: rand,
	}
}

// PlayTurn - samples cells with replacement until an empty one turns up.
func (that *randomPlayer) PlayTurn(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	size := board.Size()

	for {
		row, col := that.rand.Intn(size), that.rand.Intn(size) //nolint: gosec // it's ok
		if board.Place(mark, row, col) {
			return entity.Move{Row: row, Col: col}, nil
		}
	}
}
