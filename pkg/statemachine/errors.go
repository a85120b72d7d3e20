package statemachine

import (
	"errors"
	"fmt"
)

// ErrNoSourceStates is returned by WithTransitionFrom with an empty list.
var ErrNoSourceStates = errors.New("statemachine: transition needs at least one source state")

// NoTransitionError means no transition is defined for the event in the
// current state.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("statemachine: no transition from %q on %q", e.State, e.Event)
}

// TransitionRejectedError means transitions exist but every one was vetoed
// by a guard.
type TransitionRejectedError struct {
	State string
	Event string
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("statemachine: transition from %q on %q rejected by guards", e.State, e.Event)
}

func IsNoTransition(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

func IsRejected(err error) bool {
	var e *TransitionRejectedError
	return errors.As(err, &e)
}
