package statemachine

// Option configures a Machine in New.
type Option[S, E comparable] func(*Machine[S, E]) error

// TransitionOption attaches guards or actions to one transition.
type TransitionOption[S, E comparable] func(*transition[S, E])

// New returns a machine in initial with the given transitions.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]transition[S, E]),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New for machines defined at package init or construction
// time, where a bad definition is a programming error.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// WithTransition allows event to move the machine from one state to
// another. Several transitions may share from and event; their guards pick
// one.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		t := transition[S, E]{to: to}
		for _, opt := range opts {
			opt(&t)
		}
		if m.transitions[from] == nil {
			m.transitions[from] = make(map[E][]transition[S, E])
		}
		m.transitions[from][event] = append(m.transitions[from][event], t)
		return nil
	}
}

// WithTransitionFrom registers the same transition for every state in from.
func WithTransitionFrom[S, E comparable](from []S, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if len(from) == 0 {
			return ErrNoSourceStates
		}
		for _, s := range from {
			if err := WithTransition(s, to, event, opts...)(m); err != nil {
				return err
			}
		}
		return nil
	}
}

func WithGuard[S, E comparable](g Guard[S, E]) TransitionOption[S, E] {
	return func(t *transition[S, E]) {
		if g != nil {
			t.guards = append(t.guards, g)
		}
	}
}

func WithAction[S, E comparable](a Action[S, E]) TransitionOption[S, E] {
	return func(t *transition[S, E]) {
		if a != nil {
			t.actions = append(t.actions, a)
		}
	}
}
