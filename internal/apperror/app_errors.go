package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidState = errors.New("invalid state")
)

var (
	ErrCellOccupied  = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrOutOfBounds   = fmt.Errorf("%w: cell is out of bounds", ErrInvalidMove)
	ErrUnknownPlayer = fmt.Errorf("%w: unknown player", ErrInvalidMove)
	ErrNotYourTurn   = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)

	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidState)
	ErrNoEmptyCells = fmt.Errorf("%w: no empty cells left", ErrInvalidState)
	ErrNoMove       = fmt.Errorf("%w: search produced no move", ErrInvalidState)
)
