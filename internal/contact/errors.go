package contact

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a rejected submission. Its string form is used as the
// outcome label in logs and metrics.
type ErrorKind string

const (
	KindSpamDetected    ErrorKind = "spam_detected"
	KindMissingFields   ErrorKind = "missing_fields"
	KindInvalidEmail    ErrorKind = "invalid_email"
	KindMessageTooShort ErrorKind = "message_too_short"
	KindDeliveryFailed  ErrorKind = "delivery_failed"
	KindUnexpected      ErrorKind = "unexpected"
)

// OutcomeSent is the outcome label of a delivered submission.
const OutcomeSent = "sent"

// SuccessMessage is returned to the client after a delivered submission.
const SuccessMessage = "Message sent successfully! We'll get back to you soon."

// GenericFailureMessage is returned for every failure past validation.
const GenericFailureMessage = "Failed to send message. Please try again later."

// Message is the client-facing text for k.
func (k ErrorKind) Message() string {
	switch k {
	case KindSpamDetected:
		return "Invalid submission"
	case KindMissingFields:
		return "All fields are required"
	case KindInvalidEmail:
		return "Invalid email address"
	case KindMessageTooShort:
		return "Message must be at least 10 characters"
	default:
		return GenericFailureMessage
	}
}

// Status is the HTTP status for k: 400 for spam and validation failures,
// 500 for everything else.
func (k ErrorKind) Status() int {
	switch k {
	case KindSpamDetected, KindMissingFields, KindInvalidEmail, KindMessageTooShort:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a rejected submission. Err carries the internal cause, if any,
// and is never shown to the client.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "contact: " + string(e.Kind) + ": " + e.Err.Error()
	}
	return "contact: " + string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err. Errors that are not an *Error are
// KindUnexpected.
func KindOf(err error) ErrorKind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindUnexpected
}

var (
	// ErrSpamDetected is the cause recorded for honeypot rejections.
	ErrSpamDetected = errors.New("honeypot field is not empty")
	// ErrNilSender is returned by Submit when the service has no sender.
	ErrNilSender = errors.New("email sender is not configured")
)
