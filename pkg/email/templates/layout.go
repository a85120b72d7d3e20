package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in a minimal email document with inline styles that
// survive common mail clients. title is escaped; body renders as-is.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>`+
			templ.EscapeString(title)+
			`</title></head><body style="margin:0;padding:24px;background:#f5f5f5;font-family:Helvetica,Arial,sans-serif;color:#111;">`+
			`<div style="max-width:600px;margin:0 auto;background:#fff;padding:24px;border-radius:8px;">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></body></html>`)
		return err
	})
}
