package player

import (
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

const (
	occupiedCoordinate = "Mark position is already occupied."
	invalidCoordinate  = "Invalid mark position, please choose a valid position:"
)

// ErrMalformedInput - returned by a CoordinateReader for input that is not a number.
var ErrMalformedInput = errors.New("malformed coordinate")

// CoordinateReader - blocks until the user types a coordinate encoded as row*10+col.
type CoordinateReader interface {
	ReadCoordinate() (int, error)
}

type humanPlayer struct {
	input CoordinateReader
	out   io.Writer
}

func NewHumanPlayer(input CoordinateReader, out io.Writer) Player {
	return &humanPlayer{
		input: input,
		out:   out,
	}
}

// PlayTurn - asks for coordinates until they point at an empty cell.
func (that *humanPlayer) PlayTurn(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	fmt.Fprintf(that.out, "Player %s, type coordinates: \n", mark)

	for {
		coordinate, err := that.input.ReadCoordinate()
		if errors.Is(err, ErrMalformedInput) {
			fmt.Fprintln(that.out, invalidCoordinate)
			continue
		}

		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read coordinates: %w", err)
		}

		move := decodeCoordinate(coordinate)
		if board.Place(mark, move.Row, move.Col) {
			return move, nil
		}

		if board.Mark(move.Row, move.Col) != entity.EmptyCell {
			fmt.Fprintln(that.out, occupiedCoordinate)
		} else {
			fmt.Fprintln(that.out, invalidCoordinate)
		}
	}
}

// decodeCoordinate - the tens digit is the row and the units digit is the column.
func decodeCoordinate(coordinate int) entity.Move {
	return entity.Move{
		Row: coordinate / 10,
		Col: coordinate % 10,
	}
}
