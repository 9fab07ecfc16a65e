package player

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

type cleverPlayer struct {
	fallback Player
}

// NewCleverPlayer - the row heuristic: first empty cell of column 0, then of row 0,
// then of the main diagonal, random otherwise.
func NewCleverPlayer(rand *rand.Rand) Player {
	return &cleverPlayer{
		fallback: NewRandomPlayer(rand),
	}
}

func (that *cleverPlayer) PlayTurn(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	size := board.Size()

	scans := []func(i int) entity.Move{
		func(i int) entity.Move { return entity.Move{Row: i, Col: 0} },
		func(i int) entity.Move { return entity.Move{Row: 0, Col: i} },
		func(i int) entity.Move { return entity.Move{Row: i, Col: i} },
	}

	for _, scan := range scans {
		if move, ok := playFirstEmpty(board, mark, size, scan); ok {
			return move, nil
		}
	}

	return that.fallback.PlayTurn(board, mark)
}

// playFirstEmpty - places mark into the first empty cell of the line, reports false if the line is full.
func playFirstEmpty(board *entity.Board, mark entity.Mark, size int, cell func(i int) entity.Move) (entity.Move, bool) {
	for i := 0; i < size; i++ {
		move := cell(i)
		if board.Place(mark, move.Row, move.Col) {
			return move, true
		}
	}

	return entity.Move{}, false
}
