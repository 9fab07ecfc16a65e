package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/repository"
)

type standingsRepo interface {
	CreateOrUpdate(ctx context.Context, standings *entity.Standings) error
	GetByPlayers(ctx context.Context, player1, player2 string) (*entity.Standings, error)
}

// StandingsService - keeps running totals of all tournaments played between two strategies.
type StandingsService struct {
	logger        *slog.Logger
	standingsRepo standingsRepo
}

func NewStandingsService(logger *slog.Logger, standingsRepo standingsRepo) *StandingsService {
	return &StandingsService{
		logger:        logger.With("component", "standings"),
		standingsRepo: standingsRepo,
	}
}

// Record - adds the tally of one tournament to the stored standings and returns the new totals.
func (that *StandingsService) Record(ctx context.Context, player1, player2 string, tally entity.Tally) (*entity.Standings, error) {
	standings, err := that.standingsRepo.GetByPlayers(ctx, player1, player2)
	if errors.Is(err, repository.ErrStandingsNotFound) {
		standings = entity.NewStandings(player1, player2)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	standings.Add(tally)

	if err = that.standingsRepo.CreateOrUpdate(ctx, standings); err != nil {
		return nil, fmt.Errorf("failed to update standings: %w", err)
	}

	that.logger.Info("standings updated",
		"matchup", standings.Key(),
		"tournaments", standings.Tournaments,
		"player1_wins", standings.Player1Wins,
		"player2_wins", standings.Player2Wins,
		"draws", standings.Draws,
	)

	return standings, nil
}
