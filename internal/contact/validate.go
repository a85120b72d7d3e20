package contact

import (
	"regexp"

	"github.com/umerfilms/website/pkg/validator"
)

// EmailPattern is the local@domain.tld shape accepted by both the form and
// the endpoint. No part may contain '@' or whitespace, where whitespace also
// covers vertical tab, Unicode space separators and the byte order mark.
var EmailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// MinMessageLength is the minimum trimmed message length, in characters.
const MinMessageLength = 10

// FieldErrorKind is the reason a single field failed validation.
type FieldErrorKind int

const (
	MissingField FieldErrorKind = iota + 1
	InvalidFormat
	TooShort
)

func (k FieldErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case InvalidFormat:
		return "invalid_format"
	case TooShort:
		return "too_short"
	default:
		return "unknown"
	}
}

// FieldError is one failed field.
type FieldError struct {
	Field Field
	Kind  FieldErrorKind
}

// Message is the inline text shown next to the field on the form.
func (e FieldError) Message() string {
	switch e.Field {
	case FieldName:
		return "Name is required"
	case FieldEmail:
		if e.Kind == InvalidFormat {
			return "Please enter a valid email address"
		}
		return "Email is required"
	case FieldProjectType:
		return "Please choose a project type"
	case FieldMessage:
		if e.Kind == TooShort {
			return "Message must be at least 10 characters"
		}
		return "Message is required"
	default:
		return "Invalid value"
	}
}

// Result is the outcome of validating a submission: either the normalized
// submission or the full list of field errors.
type Result struct {
	submission Submission
	errs       []FieldError
}

func (r Result) Valid() bool { return len(r.errs) == 0 }

// Submission returns the normalized submission. It is only meaningful when
// Valid reports true.
func (r Result) Submission() Submission { return r.submission }

// Errors returns every failed field, in form order.
func (r Result) Errors() []FieldError { return r.errs }

// Kind collapses the field errors into a single error kind: missing fields
// win over a malformed email, which wins over a short message. It returns
// the empty kind for a valid result.
func (r Result) Kind() ErrorKind {
	if r.Valid() {
		return ""
	}
	kind := KindMessageTooShort
	for _, e := range r.errs {
		switch e.Kind {
		case MissingField:
			return KindMissingFields
		case InvalidFormat:
			kind = KindInvalidEmail
		}
	}
	return kind
}

// Validate applies the endpoint rules: all four fields are required after
// trimming, the email must match EmailPattern and the message must be at
// least MinMessageLength characters.
func Validate(s Submission) Result {
	return validate(s.Normalize(), true)
}

// ValidateForm applies the form rules. They match Validate except that the
// project type is not checked, since the form always preselects one.
func ValidateForm(s Submission) Result {
	return validate(s.Normalize(), false)
}

func validate(s Submission, requireProjectType bool) Result {
	rules := []validator.Rule{validator.RequiredString(string(FieldName), s.Name)}
	rules = append(rules, validator.RequiredString(string(FieldEmail), s.Email))
	rules = append(rules, validator.When(s.Email != "",
		validator.Matches(string(FieldEmail), s.Email, EmailPattern, "email"),
	)...)
	rules = append(rules, validator.When(requireProjectType,
		validator.RequiredString(string(FieldProjectType), s.ProjectType),
	)...)
	rules = append(rules, validator.RequiredString(string(FieldMessage), s.Message))
	rules = append(rules, validator.When(s.Message != "",
		validator.MinLenString(string(FieldMessage), s.Message, MinMessageLength),
	)...)

	res := Result{submission: s}
	for _, ve := range validator.ExtractValidationErrors(validator.Apply(rules...)) {
		res.errs = append(res.errs, FieldError{
			Field: Field(ve.Field),
			Kind:  fieldErrorKind(ve.TranslationKey),
		})
	}
	return res
}

func fieldErrorKind(key string) FieldErrorKind {
	switch key {
	case validator.KeyPattern:
		return InvalidFormat
	case validator.KeyMinLength:
		return TooShort
	default:
		return MissingField
	}
}
