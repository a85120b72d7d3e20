package contactform_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umerfilms/website/handler"
	"github.com/umerfilms/website/internal/contact"
	"github.com/umerfilms/website/internal/contactform"
)

func TestFormView_EscapesValues(t *testing.T) {
	t.Parallel()

	s := contactform.State{
		Values: contact.Submission{
			Name:        `Ann" onfocus="alert(1)`,
			Email:       "a@b.co",
			ProjectType: "<Custom>",
			Message:     "</textarea><script>x</script>",
		},
		Errors: map[contact.Field]string{contact.FieldName: "Name <b>is</b> required"},
		Status: contactform.StatusIdle,
	}

	var buf bytes.Buffer
	require.NoError(t, contactform.FormView(s).Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, `value="Ann&#34; onfocus=&#34;alert(1)"`)
	assert.NotContains(t, out, `onfocus="alert`)
	assert.Contains(t, out, `<option value="&lt;Custom&gt;" selected>&lt;Custom&gt;</option>`)
	assert.Contains(t, out, "&lt;/textarea&gt;&lt;script&gt;x&lt;/script&gt;</textarea>")
	assert.Contains(t, out, `<p class="field-error" id="name-error">Name &lt;b&gt;is&lt;/b&gt; required</p>`)
}

func TestErrorFragment_EscapesMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := contactform.ErrorFragment(handler.ErrorPageParams{
		StatusCode: http.StatusInternalServerError,
		Message:    "<oops>",
		RequestID:  "req-1",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<div id="contact-form">`)
	assert.Contains(t, out, "<p>&lt;oops&gt;</p>")
	assert.Contains(t, out, "<code>req-1</code>")
}
