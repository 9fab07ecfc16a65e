package renderer

import "github.com/rocketscienceinc/tictactoe-tournament/internal/entity"

type voidRenderer struct{}

// NewVoidRenderer - a renderer that shows nothing, used for long unattended tournaments.
func NewVoidRenderer() Renderer {
	return voidRenderer{}
}

func (voidRenderer) RenderBoard(entity.Snapshot) {}
