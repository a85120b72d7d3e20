// Package email sends transactional email through a provider-agnostic Sender.
//
// Implementations:
//
//   - PostmarkClient delivers through Postmark (mrz1836/postmark).
//   - DevSender writes messages to a directory for local inspection.
//   - BreakerSender wraps another Sender with a sony/gobreaker circuit
//     breaker so a failing provider is not hammered.
//
// Every implementation validates the Message before doing any work and
// makes a single delivery attempt. Failures wrap ErrFailedToSendEmail;
// malformed messages wrap ErrInvalidMessage.
//
// HTML bodies are built from templ components with templates.Render.
package email
