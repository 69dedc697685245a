package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the game core matches exactly one of them.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrDomain       = errors.New("out of domain")
)

var (
	ErrInvalidDiceValue    = fmt.Errorf("%w: dice value must be between 1 and 6", ErrInvalidInput)
	ErrInvalidPlayersCount = fmt.Errorf("%w: players count must be between 2 and 4", ErrInvalidInput)
	ErrInvalidPlayerIndex  = fmt.Errorf("%w: no such player", ErrInvalidInput)

	ErrGameIsNotStarted   = fmt.Errorf("%w: game is not started", ErrInvalidState)
	ErrGameFinished       = fmt.Errorf("%w: game is already finished", ErrInvalidState)
	ErrGameAlreadyStarted = fmt.Errorf("%w: game is already started", ErrInvalidState)
	ErrUnknownGameStatus  = fmt.Errorf("%w: unknown game status", ErrInvalidState)

	ErrPositionOutOfRange = fmt.Errorf("%w: position must be between 1 and 100", ErrDomain)
	ErrCellOutOfRange     = fmt.Errorf("%w: row and column must be between 0 and 9", ErrDomain)
)
