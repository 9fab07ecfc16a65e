package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

var ErrIllegalMove = errors.New("player did not place its mark into an empty cell")

// Player - a strategy choosing and placing a mark on the board.
type Player interface {
	PlayTurn(board *entity.Board, mark entity.Mark) (entity.Move, error)
}

// Renderer - displays a board snapshot after every ply.
type Renderer interface {
	RenderBoard(snapshot entity.Snapshot)
}

// GameController - runs one game between two players.
type GameController struct {
	logger   *slog.Logger
	players  map[entity.Mark]Player
	renderer Renderer
}

func NewGameController(logger *slog.Logger, playerX, playerO Player, renderer Renderer) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),
		players: map[entity.Mark]Player{
			entity.PlayerX: playerX,
			entity.PlayerO: playerO,
		},
		renderer: renderer,
	}
}

// Run - plays the game until somebody wins or the board fills up.
func (that *GameController) Run(game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("can't run game: %w", err)
	}

	for game.IsOngoing() {
		if err := that.MakeTurn(game); err != nil {
			return err
		}
	}

	that.logger.Debug("game finished", "status", game.Status, "winner", game.Winner, "plies", game.Plies)

	return nil
}

// MakeTurn - plays a single ply for the player whose turn it is.
func (that *GameController) MakeTurn(game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("can't make turn: %w", err)
	}

	mark := game.Turn
	filled := game.Board.Filled()

	move, err := that.players[mark].PlayTurn(game.Board, mark)
	if err != nil {
		return fmt.Errorf("player %s failed to make turn: %w", mark, err)
	}

	if game.Board.Filled() != filled+1 || game.Board.Mark(move.Row, move.Col) != mark {
		return fmt.Errorf("%w: player %s at (%d, %d)", ErrIllegalMove, mark, move.Row, move.Col)
	}

	game.Plies++
	that.logger.Debug("turn made", "mark", mark, "row", move.Row, "col", move.Col, "ply", game.Plies)

	updateGameState(game, mark)
	that.renderer.RenderBoard(game.Board.Snapshot())

	return nil
}

// updateGameState - checks the game status after a move of mark.
func updateGameState(game *entity.Game, mark entity.Mark) {
	switch {
	case HasStreak(game.Board, mark, game.WinStreak):
		game.Win(mark)
	case game.Board.IsFull():
		game.Tie()
	default:
		game.PassTurn()
	}
}
