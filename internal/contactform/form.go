package contactform

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/umerfilms/website/internal/contact"
	"github.com/umerfilms/website/pkg/statemachine"
)

// Status is the submission status of a Form.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type event string

const (
	eventSubmit  event = "submit"
	eventInvalid event = "invalid"
	eventSucceed event = "succeed"
	eventFail    event = "fail"
	eventRevert  event = "revert"
)

var settled = []Status{StatusIdle, StatusSuccess, StatusError}

func newMachine() *statemachine.Machine[Status, event] {
	return statemachine.MustNew(StatusIdle,
		statemachine.WithTransitionFrom[Status, event](settled, StatusLoading, eventSubmit),
		statemachine.WithTransitionFrom[Status, event](settled, StatusIdle, eventInvalid),
		statemachine.WithTransition[Status, event](StatusLoading, StatusSuccess, eventSucceed),
		statemachine.WithTransition[Status, event](StatusLoading, StatusError, eventFail),
		statemachine.WithTransitionFrom[Status, event]([]Status{StatusSuccess, StatusError}, StatusIdle, eventRevert),
	)
}

// DefaultDisplayWindow is how long a success or error banner stays up
// before the form returns to idle.
const DefaultDisplayWindow = 5 * time.Second

// ErrorBanner is shown after a failed round trip. It never carries server
// detail.
const ErrorBanner = "Something went wrong. Please try again later."

var (
	// ErrSubmitInFlight is returned by Submit while a previous submit is
	// still loading.
	ErrSubmitInFlight = errors.New("contactform: submission already in progress")
	// ErrInvalidForm is returned by Submit when local validation fails. No
	// request is made.
	ErrInvalidForm = errors.New("contactform: form has validation errors")
)

// State is a point-in-time copy of a Form.
type State struct {
	Values contact.Submission
	Errors map[contact.Field]string
	Status Status
	// Banner is the success or error text for the last round trip.
	Banner string
}

// Busy reports whether the submit control should be disabled.
func (s State) Busy() bool { return s.Status == StatusLoading }

// Form is the contact form state machine:
//
//	idle -> loading -> success | error -> idle
//
// Validation failures keep the form idle and record every field error at
// once. Success and error revert to idle after the display window unless
// another submit starts first. Form is safe for concurrent use.
type Form struct {
	mu        sync.Mutex
	initial   contact.Submission
	values    contact.Submission
	errs      map[contact.Field]string
	fsm       *statemachine.Machine[Status, event]
	banner    string
	window    time.Duration
	revert    *time.Timer
	observers []func(State)
}

type Option func(*Form)

// WithDisplayWindow sets how long success and error are shown.
func WithDisplayWindow(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.window = d
		}
	}
}

// WithInitialValues overrides the values the form starts from and resets
// to after a successful submit.
func WithInitialValues(s contact.Submission) Option {
	return func(f *Form) {
		f.initial = s
	}
}

// New returns an idle form with empty fields and the default project type.
func New(opts ...Option) *Form {
	f := &Form{
		initial: contact.Submission{ProjectType: contact.DefaultProjectType},
		errs:    make(map[contact.Field]string),
		fsm:     newMachine(),
		window:  DefaultDisplayWindow,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.values = f.initial
	return f
}

// OnChange registers fn to receive the new state after every change,
// including the automatic revert to idle. fn is called with the form
// locked and must not call back into the form.
func (f *Form) OnChange(fn func(State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, fn)
}

func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

// Set updates one field and clears only that field's error.
func (f *Form) Set(field contact.Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.values.With(field, value)
	delete(f.errs, field)
	f.notify()
}

// Load replaces all values, honeypot included, and clears every error.
func (f *Form) Load(s contact.Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = s
	clear(f.errs)
	f.notify()
}

// Submit validates the current values and, if they pass, hands the raw
// untrimmed values to sub. It blocks until sub returns. The in-flight guard
// is advisory: it only covers this Form.
func (f *Form) Submit(ctx context.Context, sub Submitter) error {
	f.mu.Lock()
	if !f.fsm.CanFire(ctx, eventSubmit) {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.stopRevert()
	f.banner = ""
	clear(f.errs)

	res := contact.ValidateForm(f.values)
	if !res.Valid() {
		for _, fe := range res.Errors() {
			f.errs[fe.Field] = fe.Message()
		}
		f.fire(ctx, eventInvalid)
		f.mu.Unlock()
		return ErrInvalidForm
	}

	f.fire(ctx, eventSubmit)
	values := f.values
	f.mu.Unlock()

	err := sub.Submit(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.banner = ErrorBanner
		f.fire(ctx, eventFail)
	} else {
		f.values = f.initial
		f.banner = contact.SuccessMessage
		f.fire(ctx, eventSucceed)
	}
	f.scheduleRevert()
	return err
}

// fire applies e and notifies observers. Callers only send events that are
// valid in the current state.
func (f *Form) fire(ctx context.Context, e event) {
	if _, err := f.fsm.Fire(ctx, e); err != nil {
		panic(err)
	}
	f.notify()
}

func (f *Form) scheduleRevert() {
	var t *time.Timer
	t = time.AfterFunc(f.window, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.revert != t {
			return
		}
		f.revert = nil
		f.banner = ""
		f.fire(context.Background(), eventRevert)
	})
	f.revert = t
}

func (f *Form) stopRevert() {
	if f.revert != nil {
		f.revert.Stop()
		f.revert = nil
	}
}

func (f *Form) snapshot() State {
	return State{
		Values: f.values,
		Errors: maps.Clone(f.errs),
		Status: f.fsm.Current(),
		Banner: f.banner,
	}
}

func (f *Form) notify() {
	if len(f.observers) == 0 {
		return
	}
	s := f.snapshot()
	for _, fn := range f.observers {
		fn(s)
	}
}
