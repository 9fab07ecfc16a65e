package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-tournament/internal/apperror"
)

// argsCount - rounds, board size, win streak, renderer, player 1, player 2.
const argsCount = 6

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Rounds    int    `yaml:"rounds" env:"ROUNDS" env-default:"1"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"4"`
	WinStreak int    `yaml:"win-streak" env:"WIN_STREAK" env-default:"3"`
	Renderer  string `yaml:"renderer" env:"RENDERER" env-default:"console"`
	Player1   string `yaml:"player1" env:"PLAYER1" env-default:"human"`
	Player2   string `yaml:"player2" env:"PLAYER2" env-default:"random"`
	Seed      int64  `yaml:"seed" env:"SEED" env-default:"0"`
	Redis     Redis  `yaml:"redis" env-prefix:"REDIS_"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"PORT" env-default:"6379"`
}

// MustLoad - load configuration from config file, environment and command line arguments.
func MustLoad(path string, args []string) *Config {
	config, err := Load(path, args)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads the config file when it exists and the environment otherwise,
// then lets the positional arguments override the result.
func Load(path string, args []string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.ApplyArgs(args); err != nil {
		return nil, err
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyArgs - overrides the tournament settings with
// "rounds size win-streak renderer player1 player2". No arguments keeps the config as is.
func (that *Config) ApplyArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}

	if len(args) != argsCount {
		return fmt.Errorf("%w: expected %d arguments (rounds size win-streak renderer player1 player2), got %d",
			apperror.ErrInvalidArgs, argsCount, len(args))
	}

	numbers := make([]int, 3)
	for i, name := range []string{"rounds", "size", "win-streak"} {
		number, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", apperror.ErrInvalidArgs, name, args[i])
		}
		numbers[i] = number
	}

	that.Rounds, that.BoardSize, that.WinStreak = numbers[0], numbers[1], numbers[2]
	that.Renderer = strings.ToLower(args[3])
	that.Player1 = strings.ToLower(args[4])
	that.Player2 = strings.ToLower(args[5])

	return nil
}

func (that *Config) Validate() error {
	if that.Rounds < 0 {
		return fmt.Errorf("%w: rounds must not be negative, got %d", apperror.ErrInvalidArgs, that.Rounds)
	}

	if that.BoardSize < 1 {
		return fmt.Errorf("%w: board size must be positive, got %d", apperror.ErrInvalidArgs, that.BoardSize)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
