package validator

// Translation keys attached to the built-in rules. Callers may switch on them
// to classify a ValidationError without parsing its message.
const (
	KeyRequired  = "validation.required"
	KeyMinLength = "validation.min_length"
	KeyPattern   = "validation.regex_pattern"
)
