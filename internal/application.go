package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/config"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/player"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/renderer"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// IO - the streams the application talks to.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// RunApp - runs the tournament described by the config.
func RunApp(logger *slog.Logger, conf *config.Config, streams IO) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, stopping after the current round", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	// every name is resolved before the first game starts
	boardRenderer, err := renderer.New(conf.Renderer, streams.Out)
	if err != nil {
		return fmt.Errorf("could not build renderer: %w", err)
	}

	factory := player.NewFactory(newRand(conf.Seed), console.NewKeyboard(streams.In), streams.Out)

	player1, err := factory.Build(conf.Player1)
	if err != nil {
		return fmt.Errorf("could not build player 1: %w", err)
	}

	player2, err := factory.Build(conf.Player2)
	if err != nil {
		return fmt.Errorf("could not build player 2: %w", err)
	}

	tournament := usecase.NewTournament(logger, conf.Rounds, boardRenderer, player1, player2)

	tally, err := tournament.Play(ctx, conf.BoardSize, conf.WinStreak)
	if err != nil {
		return fmt.Errorf("tournament failed: %w", err)
	}

	usecase.PrintResults(streams.Out, conf.Player1, conf.Player2, tally)

	if conf.Redis.Enabled {
		if err = recordStandings(ctx, logger, conf, tally); err != nil {
			return fmt.Errorf("could not record standings: %w", err)
		}
	}

	return nil
}

func recordStandings(ctx context.Context, logger *slog.Logger, conf *config.Config, tally entity.Tally) error {
	log := logger.With("component", "app")

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	standingsService := usecase.NewStandingsService(logger, repository.NewStandingsRepository(redisStorage))

	_, err = standingsService.Record(ctx, player.Canonical(conf.Player1), player.Canonical(conf.Player2), tally)

	return err
}

// newRand - a zero seed means a different sequence on every run.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok
}
