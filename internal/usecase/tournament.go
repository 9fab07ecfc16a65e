package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/tictactoe"
)

// Tournament - plays a number of rounds between two players, swapping who moves first every round.
type Tournament struct {
	logger   *slog.Logger
	rounds   int
	renderer tictactoe.Renderer
	player1  tictactoe.Player
	player2  tictactoe.Player
}

func NewTournament(logger *slog.Logger, rounds int, renderer tictactoe.Renderer, player1, player2 tictactoe.Player) *Tournament {
	return &Tournament{
		logger:   logger,
		rounds:   rounds,
		renderer: renderer,
		player1:  player1,
		player2:  player2,
	}
}

// Play - runs every round on a fresh board and returns the tally.
// The context is only checked between rounds.
func (that *Tournament) Play(ctx context.Context, size, winStreak int) (entity.Tally, error) {
	log := that.logger.With("component", "tournament", "method", "Play")
	log.Info("tournament started", "rounds", that.rounds, "size", size, "win_streak", entity.NormalizeWinStreak(size, winStreak))

	var tally entity.Tally
	for round := 0; round < that.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return tally, fmt.Errorf("tournament stopped before round %d: %w", round, err)
		}

		game := entity.NewGame(size, winStreak)
		if err := that.controller(round).Run(game); err != nil {
			return tally, fmt.Errorf("round %d failed: %w", round, err)
		}

		that.score(&tally, round, game)
		log.Debug("round finished", "round", round, "status", game.Status, "winner", game.Winner, "plies", game.Plies)
	}

	log.Info("tournament finished", "player1_wins", tally.Player1Wins, "player2_wins", tally.Player2Wins, "draws", tally.Draws)

	return tally, nil
}

// controller - player 1 moves first in even rounds, player 2 in odd ones.
func (that *Tournament) controller(round int) *tictactoe.GameController {
	if round%2 == 0 {
		return tictactoe.NewGameController(that.logger, that.player1, that.player2, that.renderer)
	}
	return tictactoe.NewGameController(that.logger, that.player2, that.player1, that.renderer)
}

// score - maps the winning mark back to the player that held it in this round.
func (that *Tournament) score(tally *entity.Tally, round int, game *entity.Game) {
	player1Mark := entity.PlayerX
	if round%2 == 1 {
		player1Mark = entity.PlayerO
	}

	switch game.Winner {
	case player1Mark:
		tally.Player1Wins++
	case player1Mark.Other():
		tally.Player2Wins++
	default:
		tally.Draws++
	}
}
