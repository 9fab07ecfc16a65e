package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	DefaultWinStreak = 3
	minWinStreak     = 2
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - the state of a single game. It is created per game and thrown away once finished.
type Game struct {
	Board     *Board `json:"-"`
	WinStreak int    `json:"win_streak"`
	Turn      Mark   `json:"player_turn"`
	Winner    Mark   `json:"winner"`
	Status    string `json:"status"`
	Plies     int    `json:"plies"`
}

func NewGame(size, winStreak int) *Game {
	return &Game{
		Board:     NewBoard(size),
		WinStreak: NormalizeWinStreak(size, winStreak),
		Turn:      PlayerX,
		Status:    StatusOngoing,
	}
}

// NormalizeWinStreak - falls back to the board size when the streak is outside [2, size].
func NormalizeWinStreak(size, winStreak int) int {
	if winStreak < minWinStreak || winStreak > size {
		return size
	}
	return winStreak
}

// Win - finishes the game in favour of mark.
func (that *Game) Win(mark Mark) {
	that.Winner = mark
	that.Status = StatusWon
	that.Turn = EmptyCell
}

// Tie - finishes the game without a winner.
func (that *Game) Tie() {
	that.Winner = EmptyCell
	that.Status = StatusDraw
	that.Turn = EmptyCell
}

// PassTurn - hands the move to the opponent.
func (that *Game) PassTurn() {
	that.Turn = that.Turn.Other()
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
