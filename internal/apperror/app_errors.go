package apperror

import "errors"

// ErrInvalidMove is the only error kind the engine reports. It is always
// returned together with one of the causes below.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")

	ErrUnknownCommand = errors.New("unknown command")
)
