package contactform_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umerfilms/website/internal/contact"
	"github.com/umerfilms/website/internal/contactform"
)

type recorder struct {
	mu     sync.Mutex
	states []contactform.State
}

func (r *recorder) observe(s contactform.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) statuses() []contactform.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]contactform.Status, 0, len(r.states))
	for _, s := range r.states {
		out = append(out, s.Status)
	}
	return out
}

func fill(f *contactform.Form) {
	f.Set(contact.FieldName, "  Test User ")
	f.Set(contact.FieldEmail, "test@example.com ")
	f.Set(contact.FieldMessage, " This is a test message for the contact form. ")
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	s := contactform.New().Snapshot()
	assert.Equal(t, contactform.StatusIdle, s.Status)
	assert.Equal(t, contact.Submission{ProjectType: contact.DefaultProjectType}, s.Values)
	assert.Empty(t, s.Errors)
	assert.Empty(t, s.Banner)
}

func TestForm_InvalidSubmitMakesNoCall(t *testing.T) {
	t.Parallel()

	called := false
	sub := contactform.SubmitterFunc(func(context.Context, contact.Submission) error {
		called = true
		return nil
	})

	f := contactform.New()
	f.Set(contact.FieldEmail, "not-an-email")
	f.Set(contact.FieldMessage, "short")

	err := f.Submit(context.Background(), sub)
	require.ErrorIs(t, err, contactform.ErrInvalidForm)
	assert.False(t, called)

	s := f.Snapshot()
	assert.Equal(t, contactform.StatusIdle, s.Status)
	assert.Equal(t, map[contact.Field]string{
		contact.FieldName:    "Name is required",
		contact.FieldEmail:   "Please enter a valid email address",
		contact.FieldMessage: "Message must be at least 10 characters",
	}, s.Errors)
	assert.Equal(t, "not-an-email", s.Values.Email, "values are kept")
}

func TestForm_SetClearsOnlyThatFieldError(t *testing.T) {
	t.Parallel()

	f := contactform.New()
	require.ErrorIs(t, f.Submit(context.Background(), contactform.SubmitterFunc(nil)), contactform.ErrInvalidForm)
	require.Len(t, f.Snapshot().Errors, 3)

	f.Set(contact.FieldName, "A")

	errs := f.Snapshot().Errors
	assert.NotContains(t, errs, contact.FieldName)
	assert.Contains(t, errs, contact.FieldEmail)
	assert.Contains(t, errs, contact.FieldMessage)
}

func TestForm_SubmitSendsRawValues(t *testing.T) {
	t.Parallel()

	var got contact.Submission
	sub := contactform.SubmitterFunc(func(_ context.Context, s contact.Submission) error {
		got = s
		return nil
	})

	f := contactform.New(contactform.WithDisplayWindow(time.Hour))
	fill(f)
	f.Load(contact.Submission{
		Name:        "  Test User ",
		Email:       "test@example.com ",
		ProjectType: "Wedding",
		Message:     " This is a test message for the contact form. ",
		Honeypot:    "",
	})

	require.NoError(t, f.Submit(context.Background(), sub))
	assert.Equal(t, "  Test User ", got.Name)
	assert.Equal(t, "test@example.com ", got.Email)
	assert.Equal(t, " This is a test message for the contact form. ", got.Message)
	assert.Equal(t, "Wedding", got.ProjectType)
}

func TestForm_HoneypotIsSentVerbatim(t *testing.T) {
	t.Parallel()

	var got contact.Submission
	sub := contactform.SubmitterFunc(func(_ context.Context, s contact.Submission) error {
		got = s
		return nil
	})

	f := contactform.New(contactform.WithDisplayWindow(time.Hour))
	fill(f)
	v := f.Snapshot().Values
	v.Honeypot = " bot "
	f.Load(v)

	require.NoError(t, f.Submit(context.Background(), sub))
	assert.Equal(t, " bot ", got.Honeypot)
}

func TestForm_SuccessResetsAndReverts(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	f := contactform.New(contactform.WithDisplayWindow(20 * time.Millisecond))
	fill(f)
	f.OnChange(rec.observe)

	require.NoError(t, f.Submit(context.Background(), contactform.SubmitterFunc(func(context.Context, contact.Submission) error {
		return nil
	})))

	s := f.Snapshot()
	assert.Equal(t, contactform.StatusSuccess, s.Status)
	assert.Equal(t, contact.SuccessMessage, s.Banner)
	assert.Equal(t, contact.Submission{ProjectType: contact.DefaultProjectType}, s.Values)

	assert.Eventually(t, func() bool {
		return f.Snapshot().Status == contactform.StatusIdle
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, f.Snapshot().Banner)
	assert.Equal(t, []contactform.Status{
		contactform.StatusLoading,
		contactform.StatusSuccess,
		contactform.StatusIdle,
	}, rec.statuses())
}

func TestForm_FailureKeepsValues(t *testing.T) {
	t.Parallel()

	f := contactform.New(contactform.WithDisplayWindow(20 * time.Millisecond))
	fill(f)
	before := f.Snapshot().Values

	boom := &contactform.SubmitError{Status: 500, Message: contact.GenericFailureMessage}
	err := f.Submit(context.Background(), contactform.SubmitterFunc(func(context.Context, contact.Submission) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)

	s := f.Snapshot()
	assert.Equal(t, contactform.StatusError, s.Status)
	assert.Equal(t, contactform.ErrorBanner, s.Banner)
	assert.Equal(t, before, s.Values)

	assert.Eventually(t, func() bool {
		return f.Snapshot().Status == contactform.StatusIdle
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, before, f.Snapshot().Values)
}

func TestForm_RejectsSubmitWhileLoading(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	sub := contactform.SubmitterFunc(func(context.Context, contact.Submission) error {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return nil
	})

	f := contactform.New(contactform.WithDisplayWindow(time.Hour))
	fill(f)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), sub) }()

	require.Eventually(t, func() bool {
		return f.Snapshot().Busy()
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, f.Submit(context.Background(), sub), contactform.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestForm_NewSubmitCancelsPendingRevert(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	f := contactform.New(contactform.WithDisplayWindow(30 * time.Millisecond))
	fill(f)

	fail := contactform.SubmitterFunc(func(context.Context, contact.Submission) error {
		return errors.New("offline")
	})
	require.Error(t, f.Submit(context.Background(), fail))

	f.OnChange(rec.observe)
	require.Error(t, f.Submit(context.Background(), fail))

	assert.Eventually(t, func() bool {
		return f.Snapshot().Status == contactform.StatusIdle
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []contactform.Status{
		contactform.StatusLoading,
		contactform.StatusError,
		contactform.StatusIdle,
	}, rec.statuses(), "only one revert fires")
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", contactform.StatusIdle.String())
	assert.Equal(t, "loading", contactform.StatusLoading.String())
	assert.Equal(t, "success", contactform.StatusSuccess.String())
	assert.Equal(t, "error", contactform.StatusError.String())
	assert.Equal(t, "Status(9)", contactform.Status(9).String())
}
