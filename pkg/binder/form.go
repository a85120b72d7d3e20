package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the in-memory limit for multipart form parsing.
const DefaultMaxMemory = 1 << 20 // 1 MB

// Form returns a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Fields are matched by their `form` tag; a
// field without one is matched by its lowercased name, and `form:"-"` skips
// it. Values are bound verbatim.
//
//	type Submission struct {
//		Name        string `form:"name"`
//		ProjectType string `form:"projectType"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, r.Header.Get("Content-Type"))
		}

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return fmt.Errorf("%w: got %s, expected a form encoding", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
