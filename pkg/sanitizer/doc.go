// Package sanitizer provides small, stateless helpers for cleaning user input
// before it is rendered or forwarded.
//
// The helpers fall into two groups:
//
//   - Strings: trimming, whitespace normalisation, truncation by characters.
//   - Security: HTML entity escaping for the five HTML-significant characters,
//     newline to <br> conversion for already escaped text, header injection
//     prevention.
//
// Helpers can be chained with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.EscapeHTML,
//	    sanitizer.NewlinesToBreaks,
//	)
//
//	safe := clean("  <b>hi</b>\nthere ") // "&lt;b&gt;hi&lt;/b&gt;<br>there"
//
// Ordering matters: NewlinesToBreaks emits raw markup and must run after
// EscapeHTML, otherwise the inserted <br> tags would be escaped, and escaping
// must run first so a user-supplied "<" can never form a tag.
package sanitizer
