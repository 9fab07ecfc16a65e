// Package renderer displays board snapshots.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

const (
	ConsoleType = "console"
	NoneType    = "none"
)

type Renderer interface {
	RenderBoard(snapshot entity.Snapshot)
}

// New - builds a renderer by name, output goes to out.
func New(name string, out io.Writer) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ConsoleType:
		return NewConsoleRenderer(out), nil
	case NoneType, "void":
		return NewVoidRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownRenderer, name)
	}
}
