// Package binder decodes HTTP request data into structs for handler.Wrap.
//
// Three binders are provided:
//
//   - JSON decodes an application/json body with goccy/go-json.
//   - Form decodes urlencoded or multipart form bodies using `form` tags.
//   - Signals decodes the datastar signal store using `json` tags.
//
// Binders never trim or rewrite values. Normalization belongs to the
// domain layer, which needs to see raw input (for example to tell an empty
// honeypot field from one containing whitespace).
//
// All errors wrap one of the package sentinels so callers can map them to
// responses with errors.Is.
package binder
