package email

import "errors"

var (
	ErrFailedToSendEmail  = errors.New("email: failed to send")
	ErrInvalidMessage     = errors.New("email: invalid message")
	ErrMissingServerToken = errors.New("email: postmark server token is not configured")
	ErrCircuitOpen        = errors.New("email: provider circuit open")
)
