package contact

import "strings"

// Field identifies a user-editable submission field. Its string form is the
// JSON key the field is sent under.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldProjectType Field = "projectType"
	FieldMessage     Field = "message"
)

// Fields lists the user-editable fields in form order.
var Fields = []Field{FieldName, FieldEmail, FieldProjectType, FieldMessage}

// DefaultProjectType is preselected on the contact form.
const DefaultProjectType = "Commercial"

// ProjectTypes is the preset category list offered by the form. The server
// accepts any non-empty project type.
var ProjectTypes = []string{
	"Commercial",
	"Wedding",
	"Music Video",
	"Documentary",
	"Corporate",
	"Event",
	"Other",
}

// Submission is a contact form payload. It is transient and never stored.
type Submission struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	ProjectType string `json:"projectType" form:"projectType"`
	Message     string `json:"message" form:"message"`
	// Honeypot is a hidden input that humans leave empty.
	Honeypot string `json:"honeypot" form:"honeypot"`
}

// Normalize returns a copy with the four text fields trimmed. The honeypot
// is left untouched.
func (s Submission) Normalize() Submission {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.ProjectType = strings.TrimSpace(s.ProjectType)
	s.Message = strings.TrimSpace(s.Message)
	return s
}

// IsSpam reports whether the honeypot was filled in.
func (s Submission) IsSpam() bool {
	return s.Honeypot != ""
}

// Value returns the raw value of f.
func (s Submission) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldProjectType:
		return s.ProjectType
	case FieldMessage:
		return s.Message
	default:
		return ""
	}
}

// With returns a copy with f set to value. Unknown fields are ignored.
func (s Submission) With(f Field, value string) Submission {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldProjectType:
		s.ProjectType = value
	case FieldMessage:
		s.Message = value
	}
	return s
}
