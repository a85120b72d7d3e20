// Package contact implements the contact form submission pipeline behind
// POST /api/contact.
//
// A request moves through a fixed sequence and stops at the first failure:
//
//  1. Spam check. A non-empty honeypot is rejected before anything else.
//  2. Normalization. The four text fields are trimmed.
//  3. Validation. Validate reports every failing field at once; the result
//     collapses to a single ErrorKind (missing fields, then invalid email,
//     then a short message).
//  4. Escaping and composition. User values are HTML-escaped before they
//     are interpolated, and message line breaks become <br> afterwards.
//  5. Dispatch. The email.Sender is called exactly once. Provider errors are
//     logged and surface to the client only as a generic failure.
//
// Spam and validation rejections are 400s, everything else is a 500. The
// spam response is as terse as a validation failure so the honeypot cannot
// be probed.
//
// ValidateForm applies the same rules for the browser form, minus the
// project type check, so client and server share one rule set and one
// EmailPattern.
//
// Usage:
//
//	svc := contact.NewService(sender, cfg,
//		contact.WithLogger(log),
//		contact.WithMetrics(metrics.Contact{}),
//	)
//	r.Post("/api/contact", contact.NewHandler(svc, log).ServeHTTP)
package contact
