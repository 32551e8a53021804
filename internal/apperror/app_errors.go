package apperror

import "errors"

var (
	ErrBadBoardSize   = errors.New("board size must be a positive integer")
	ErrBadPlayerCount = errors.New("player count must be a positive integer")
	ErrBadMoveToken   = errors.New("move token is not an integer")
	ErrTruncatedMove  = errors.New("moves input ends mid-triple")
)
