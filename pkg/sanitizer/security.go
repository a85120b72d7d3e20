package sanitizer

import "strings"

// htmlEscaper replaces the five HTML-significant characters with entities.
// strings.Replacer scans the input once, so entities produced for one
// character are never re-escaped by a later rule; the ampersand rule is
// listed first to keep the mapping readable in the same order.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes & < > " and ' so the value can be interpolated into
// HTML element content or quoted attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// NewlinesToBreaks converts line endings (\r\n, \r, \n) into <br> tags.
// Call it only on already escaped text: it inserts raw markup.
func NewlinesToBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}

// PreventHeaderInjection removes characters that could be used for header injection.
func PreventHeaderInjection(s string) string {
	result := strings.ReplaceAll(s, "\r", "")
	result = strings.ReplaceAll(result, "\n", "")
	return RemoveNullBytes(result)
}

// RemoveNullBytes removes null bytes from a string.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
