package apperror

import (
	"errors"
	"strings"
)

var (
	ErrOutOfRange             = errors.New("cell index is out of range")
	ErrOccupiedCell           = errors.New("cell is already occupied")
	ErrGameNotActive          = errors.New("game is not active")
	ErrIllegalMove            = errors.New("illegal move")
	ErrNoHistory              = errors.New("no moves to undo")
	ErrInvalidNames           = errors.New("invalid player names")
	ErrPersistenceUnavailable = errors.New("persistence is unavailable")
	ErrUnknownIntent          = errors.New("unknown intent")
	ErrSessionNotFound        = errors.New("session not found")
)

// InvalidNamesError carries every name rule that a submission broke.
type InvalidNamesError struct {
	Violations []string
}

func (that *InvalidNamesError) Error() string {
	return ErrInvalidNames.Error() + ": " + strings.Join(that.Violations, "; ")
}

func (that *InvalidNamesError) Is(target error) bool {
	return target == ErrInvalidNames
}
