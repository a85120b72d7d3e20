package contact_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umerfilms/website/internal/contact"
)

func TestErrorKind_MessageAndStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    contact.ErrorKind
		message string
		status  int
	}{
		{contact.KindSpamDetected, "Invalid submission", http.StatusBadRequest},
		{contact.KindMissingFields, "All fields are required", http.StatusBadRequest},
		{contact.KindInvalidEmail, "Invalid email address", http.StatusBadRequest},
		{contact.KindMessageTooShort, "Message must be at least 10 characters", http.StatusBadRequest},
		{contact.KindDeliveryFailed, contact.GenericFailureMessage, http.StatusInternalServerError},
		{contact.KindUnexpected, contact.GenericFailureMessage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.message, tt.kind.Message())
			assert.Equal(t, tt.status, tt.kind.Status())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("provider said no")
	err := fmt.Errorf("submit: %w", &contact.Error{Kind: contact.KindDeliveryFailed, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, contact.KindDeliveryFailed, contact.KindOf(err))
	assert.Contains(t, err.Error(), "delivery_failed")

	assert.Equal(t, "contact: missing_fields", (&contact.Error{Kind: contact.KindMissingFields}).Error())
}

func TestKindOf_UnknownError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, contact.KindUnexpected, contact.KindOf(errors.New("boom")))
}
