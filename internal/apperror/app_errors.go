package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("coordinates out of bounds")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
)
