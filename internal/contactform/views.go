package contactform

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/goccy/go-json"

	"github.com/umerfilms/website/handler"
	"github.com/umerfilms/website/internal/contact"
)

// FormID is the element id the form fragment is rendered into and patched
// onto.
const FormID = "contact-form"

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

func esc(s string) string { return templ.EscapeString(s) }

// Page renders the full contact page around FormView.
func Page(s State) templ.Component {
	return document("Contact | UmerFilms", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="contact"><h1>Let&#39;s work together</h1>`+
			`<p class="lead">Tell us about your project and we will get back to you within two business days.</p>`); err != nil {
			return err
		}
		if err := FormView(s).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	}))
}

// ErrorPage is the full page shown when the contact page itself fails.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return document("Error | UmerFilms", errorBody(p))
}

// ErrorFragment replaces the form for datastar requests that fail.
func ErrorFragment(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="`+FormID+`">`); err != nil {
			return err
		}
		if err := errorBody(p).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func errorBody(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<section class="error" role="alert"><h2>%d</h2><p>%s</p>`, p.StatusCode, esc(p.Message))
		if p.RequestID != "" {
			fmt.Fprintf(&b, `<p class="request-id">Request ID: <code>%s</code></p>`, esc(p.RequestID))
		}
		b.WriteString(`<p><a href="/contact">Back to the contact form</a></p></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func document(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+esc(title)+`</title>`+
			`<script type="module" src="`+datastarScript+`"></script>`+
			`</head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// FormView renders the form for s. Without JavaScript it posts as a regular
// form; with datastar the fields are bound to signals and the submit is
// streamed back as patches of this element.
func FormView(s State) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		signals, err := json.Marshal(signalsOf(s.Values))
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" data-status="%s">`, FormID, s.Status)
		fmt.Fprintf(&b, `<form method="post" action="/contact" novalidate data-signals="%s" data-on:submit__prevent="@post('/contact')">`, esc(string(signals)))

		switch {
		case s.Status == StatusSuccess && s.Banner != "":
			fmt.Fprintf(&b, `<div class="banner banner-success" role="status">%s</div>`, esc(s.Banner))
		case s.Status == StatusError && s.Banner != "":
			fmt.Fprintf(&b, `<div class="banner banner-error" role="alert">%s</div>`, esc(s.Banner))
		}

		input(&b, s, contact.FieldName, "Name", "text", "name")
		input(&b, s, contact.FieldEmail, "Email", "email", "email")
		projectSelect(&b, s)
		textarea(&b, s)

		// Hidden from people, filled in by bots.
		fmt.Fprintf(&b, `<div class="hp" aria-hidden="true" style="position:absolute;left:-9999px;">`+
			`<label for="honeypot">Leave this field empty</label>`+
			`<input type="text" id="honeypot" name="honeypot" tabindex="-1" autocomplete="off" data-bind="honeypot" value="%s"></div>`,
			esc(s.Values.Honeypot))

		if s.Busy() {
			b.WriteString(`<button type="submit" disabled aria-busy="true">Sending...</button>`)
		} else {
			b.WriteString(`<button type="submit">Send Message</button>`)
		}
		b.WriteString(`</form></div>`)

		_, err = io.WriteString(w, b.String())
		return err
	})
}

func input(b *strings.Builder, s State, f contact.Field, label, typ, autocomplete string) {
	fmt.Fprintf(b, `<div class="field"><label for="%[1]s">%[2]s</label>`+
		`<input type="%[3]s" id="%[1]s" name="%[1]s" autocomplete="%[4]s" data-bind="%[1]s" value="%[5]s"%[6]s>`,
		f, label, typ, autocomplete, esc(s.Values.Value(f)), invalidAttr(s, f))
	fieldError(b, s, f)
	b.WriteString(`</div>`)
}

func projectSelect(b *strings.Builder, s State) {
	f := contact.FieldProjectType
	fmt.Fprintf(b, `<div class="field"><label for="%[1]s">Project Type</label><select id="%[1]s" name="%[1]s" data-bind="%[1]s"%[2]s>`,
		f, invalidAttr(s, f))
	current := s.Values.ProjectType
	known := false
	for _, pt := range contact.ProjectTypes {
		selected := ""
		if pt == current {
			selected = " selected"
			known = true
		}
		fmt.Fprintf(b, `<option value="%[1]s"%[2]s>%[1]s</option>`, esc(pt), selected)
	}
	if !known && current != "" {
		fmt.Fprintf(b, `<option value="%[1]s" selected>%[1]s</option>`, esc(current))
	}
	b.WriteString(`</select>`)
	fieldError(b, s, f)
	b.WriteString(`</div>`)
}

func textarea(b *strings.Builder, s State) {
	f := contact.FieldMessage
	fmt.Fprintf(b, `<div class="field"><label for="%[1]s">Message</label>`+
		`<textarea id="%[1]s" name="%[1]s" rows="6" data-bind="%[1]s"%[2]s>%[3]s</textarea>`,
		f, invalidAttr(s, f), esc(s.Values.Message))
	fieldError(b, s, f)
	b.WriteString(`</div>`)
}

func fieldError(b *strings.Builder, s State, f contact.Field) {
	if msg, ok := s.Errors[f]; ok {
		fmt.Fprintf(b, `<p class="field-error" id="%s-error">%s</p>`, f, esc(msg))
	}
}

func invalidAttr(s State, f contact.Field) string {
	if _, ok := s.Errors[f]; ok {
		return fmt.Sprintf(` aria-invalid="true" aria-describedby="%s-error"`, f)
	}
	return ""
}

func signalsOf(v contact.Submission) map[string]any {
	return map[string]any{
		string(contact.FieldName):        v.Name,
		string(contact.FieldEmail):       v.Email,
		string(contact.FieldProjectType): v.ProjectType,
		string(contact.FieldMessage):     v.Message,
		"honeypot":                       v.Honeypot,
	}
}
