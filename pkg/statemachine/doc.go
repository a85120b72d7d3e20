// Package statemachine is a small typed finite state machine.
//
// States and events are any comparable types, usually string or int
// constants. Transitions are declared up front with options; Fire applies an
// event and fails with *NoTransitionError when the current state has no
// transition for it, or *TransitionRejectedError when every guard vetoes.
//
//	type status int
//	type event string
//
//	m := statemachine.MustNew[status, event](idle,
//		statemachine.WithTransition[status, event](idle, loading, "submit"),
//		statemachine.WithTransitionFrom[status, event]([]status{success, failed}, idle, "revert"),
//	)
//
//	next, err := m.Fire(ctx, "submit")
//
// Guards run in registration order and the first transition whose guards all
// pass wins. Actions run before the state changes; an action error leaves the
// machine where it was.
package statemachine
