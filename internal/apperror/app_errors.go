package apperror

import "errors"

var (
	ErrUnknownPlayer   = errors.New("unknown player name")
	ErrUnknownRenderer = errors.New("unknown renderer name")
	ErrInvalidArgs     = errors.New("invalid arguments")
	ErrGameFinished    = errors.New("game is already finished")
)
