package contact

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"time"

	"github.com/a-h/templ"

	"github.com/umerfilms/website/pkg/email"
	"github.com/umerfilms/website/pkg/email/templates"
	"github.com/umerfilms/website/pkg/sanitizer"
)

// TimestampLayout formats the submission time in the notification body.
const TimestampLayout = "Monday, January 2, 2006 at 3:04 PM MST"

// EmailTag is attached to every contact notification.
const EmailTag = "contact"

// Escaped holds submission values that are safe to interpolate into HTML.
type Escaped struct {
	Name        string
	Email       string
	ProjectType string
	// Message is escaped, with line breaks turned into <br>.
	Message string
}

// Escape entity-escapes every user-supplied value. Line breaks in the
// message become <br> only after escaping, so user input can never produce
// markup.
func Escape(s Submission) Escaped {
	return Escaped{
		Name:        sanitizer.EscapeHTML(s.Name),
		Email:       sanitizer.EscapeHTML(s.Email),
		ProjectType: sanitizer.EscapeHTML(s.ProjectType),
		Message:     sanitizer.Apply(s.Message, sanitizer.EscapeHTML, sanitizer.NewlinesToBreaks),
	}
}

// MaxSubjectLength caps the subject line, in characters.
const MaxSubjectLength = 200

var subjectLine = sanitizer.Compose(
	sanitizer.RemoveControlChars,
	sanitizer.SingleLine,
	sanitizer.PreventHeaderInjection,
	func(s string) string { return sanitizer.MaxLength(s, MaxSubjectLength) },
)

// Subject is the notification subject line built from escaped values. It is
// always a single header-safe line of at most MaxSubjectLength characters.
func Subject(e Escaped) string {
	return subjectLine(fmt.Sprintf("New %s inquiry from %s", e.ProjectType, e.Name))
}

// Body renders the notification content. All values in e must already be
// escaped; they are written as-is.
func Body(e Escaped, at time.Time) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h2 style="margin:0 0 16px;font-size:20px;">New Contact Form Submission</h2>`+
				`<table style="width:100%%;border-collapse:collapse;font-size:14px;">`+
				`<tr><td style="padding:6px 0;font-weight:bold;width:140px;">Name:</td><td style="padding:6px 0;">%s</td></tr>`+
				`<tr><td style="padding:6px 0;font-weight:bold;">Email:</td><td style="padding:6px 0;">%s</td></tr>`+
				`<tr><td style="padding:6px 0;font-weight:bold;">Project Type:</td><td style="padding:6px 0;">%s</td></tr>`+
				`</table>`+
				`<h3 style="margin:24px 0 8px;font-size:16px;">Message:</h3>`+
				`<p style="margin:0;line-height:1.5;">%s</p>`+
				`<p style="margin:24px 0 0;font-size:12px;color:#666;">Submitted on %s</p>`,
			e.Name, e.Email, e.ProjectType, e.Message, sanitizer.EscapeHTML(at.Format(TimestampLayout)),
		)
		return err
	})
}

// Compose builds the notification for a normalized, valid submission.
func Compose(ctx context.Context, cfg Config, s Submission, at time.Time) (email.Message, error) {
	e := Escape(s)
	subject := Subject(e)

	html, err := templates.Render(ctx, templates.Layout("New Contact Form Submission", Body(e, at)))
	if err != nil {
		return email.Message{}, fmt.Errorf("render notification: %w", err)
	}

	msg := email.Message{
		From:    cfg.FromEmail,
		To:      cfg.ToEmail,
		Subject: subject,
		HTML:    html,
		Tag:     EmailTag,
	}
	// The form pattern is looser than RFC 5322; only set Reply-To when the
	// provider will accept it.
	if _, err := mail.ParseAddress(s.Email); err == nil {
		msg.ReplyTo = s.Email
	}
	return msg, nil
}
