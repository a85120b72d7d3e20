package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Sender delivers a single message. Implementations make exactly one
// delivery attempt per call.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) (Receipt, error)

func (f SenderFunc) Send(ctx context.Context, msg Message) (Receipt, error) {
	return f(ctx, msg)
}

// Message is a provider-agnostic outbound email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Tag     string `json:"tag,omitempty"`
}

// Receipt is what the provider reports back for an accepted message.
type Receipt struct {
	MessageID   string    `json:"message_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Validate checks the fields every provider needs. Addresses may be bare
// or in "Display Name <addr>" form.
func (m Message) Validate() error {
	if err := validAddress("from", m.From); err != nil {
		return err
	}
	if err := validAddress("to", m.To); err != nil {
		return err
	}
	if m.ReplyTo != "" {
		if err := validAddress("reply_to", m.ReplyTo); err != nil {
			return err
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if strings.ContainsAny(m.Subject, "\r\n") {
		return fmt.Errorf("%w: subject must be a single line", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.HTML) == "" {
		return fmt.Errorf("%w: html body is required", ErrInvalidMessage)
	}
	return nil
}

func validAddress(field, addr string) error {
	if strings.TrimSpace(addr) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidMessage, field)
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidMessage, field, err)
	}
	return nil
}
