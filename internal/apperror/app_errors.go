package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrDuplicatePlayer  = errors.New("this name is already being used")
	ErrInvalidPlayerID  = errors.New("invalid player name")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrTooManyPlayers   = errors.New("too many players")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrBoardTooSmall    = errors.New("board is too small")
	ErrBoardTooLarge    = errors.New("board is too large")
	ErrInputClosed      = errors.New("input is closed")
)

// InputError is an answer rejected for a reason the player can act on.
// Error returns only the reason; the sentinel stays reachable through errors.Is.
type InputError struct {
	Reason string
	Err    error
}

func (that *InputError) Error() string {
	return that.Reason
}

func (that *InputError) Unwrap() error {
	return that.Err
}

// Reject - builds an InputError for err with a formatted reason.
func Reject(err error, format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...), Err: err}
}
