// Package player implements the strategies that take turns on a tic-tac-toe board.
package player

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

const (
	HumanType           = "human"
	RandomType          = "random"
	RowHeuristicType    = "row-heuristic"
	ColumnHeuristicType = "column-heuristic"
)

// aliases - names accepted for compatibility with older configurations.
var aliases = map[string]string{
	"whatever": RandomType,
	"clever":   RowHeuristicType,
	"genius":   ColumnHeuristicType,
}

// Player - a strategy that places mark on the board and returns the cell it played.
// Only the human player may fail, when its input runs dry.
type Player interface {
	PlayTurn(board *entity.Board, mark entity.Mark) (entity.Move, error)
}

// Factory - builds players by name.
type Factory struct {
	rand  *rand.Rand
	input CoordinateReader
	out   io.Writer
}

func NewFactory(rand *rand.Rand, input CoordinateReader, out io.Writer) *Factory {
	return &Factory{
		rand:  rand,
		input: input,
		out:   out,
	}
}

// Build - returns a fresh player of the given type.
func (that *Factory) Build(name string) (Player, error) {
	switch Canonical(name) {
	case HumanType:
		return NewHumanPlayer(that.input, that.out), nil
	case RandomType:
		return NewRandomPlayer(that.rand), nil
	case RowHeuristicType:
		return NewCleverPlayer(that.rand), nil
	case ColumnHeuristicType:
		return NewGeniusPlayer(that.rand), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, name)
	}
}

// Canonical - lower-cases the name and resolves aliases.
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}
