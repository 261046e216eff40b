package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrInvalidNumber = errors.New("input is not a number")
	ErrOutOfRange    = errors.New("move is out of range")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInputClosed   = errors.New("input stream closed")
)

