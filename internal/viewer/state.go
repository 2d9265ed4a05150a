package viewer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDisplay indicates the window system or graphics driver is unavailable.
	ErrNoDisplay = errors.New("viewer: no display available")

	// ErrInvalidTransition indicates an operation called in the wrong state.
	ErrInvalidTransition = errors.New("viewer: invalid state transition")
)

type State int

const (
	Uninitialized State = iota
	Running
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func transitionError(op string, from State) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, from)
}
