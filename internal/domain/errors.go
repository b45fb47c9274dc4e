package domain

import (
	"errors"
	"fmt"
)

// Errors returned by domain operations.
var (
	ErrGameOver        = errors.New("game over")
	ErrWrongPlayer     = errors.New("wrong player")
	ErrOccupied        = errors.New("cell occupied")
	ErrInvalidPosition = errors.New("invalid position")
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrBadNotation     = errors.New("bad notation")
)

// MoveError reports a rejected placement. Match the cause with errors.Is.
type MoveError struct {
	Player Player
	Square Square
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s at %s: %v", e.Player, e.Square, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
