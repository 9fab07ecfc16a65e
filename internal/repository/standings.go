package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

var ErrStandingsNotFound = errors.New("standings not found")

type StandingsRepository interface {
	CreateOrUpdate(ctx context.Context, standings *entity.Standings) error
	GetByPlayers(ctx context.Context, player1, player2 string) (*entity.Standings, error)
	DeleteByPlayers(ctx context.Context, player1, player2 string) error
}

type dbStandings struct {
	client *redis.Client
}

func NewStandingsRepository(client *redis.Client) StandingsRepository {
	return &dbStandings{
		client: client,
	}
}

func standingsKey(player1, player2 string) string {
	return "standings:" + entity.NewStandings(player1, player2).Key()
}

func (that *dbStandings) CreateOrUpdate(ctx context.Context, standings *entity.Standings) error {
	standingsJSON, err := json.Marshal(standings)
	if err != nil {
		return fmt.Errorf("could not marshal standings: %w", err)
	}

	key := standingsKey(standings.Player1, standings.Player2)
	if err = that.client.Set(ctx, key, standingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set standings: %w", err)
	}

	return nil
}

func (that *dbStandings) GetByPlayers(ctx context.Context, player1, player2 string) (*entity.Standings, error) {
	response, err := that.client.Get(ctx, standingsKey(player1, player2)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrStandingsNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	var existing entity.Standings
	if err = json.Unmarshal([]byte(response), &existing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standings: %w", err)
	}

	return &existing, nil
}

func (that *dbStandings) DeleteByPlayers(ctx context.Context, player1, player2 string) error {
	deleted, err := that.client.Del(ctx, standingsKey(player1, player2)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete standings: %w", err)
	}

	if deleted == 0 {
		return ErrStandingsNotFound
	}

	return nil
}
