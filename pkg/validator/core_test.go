package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umerfilms/website/pkg/validator"
)

func failing(field, msg string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: msg},
	}
}

func passing(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Message: "unused"},
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	var empty validator.ValidationErrors
	assert.Equal(t, "validation failed", empty.Error())

	errs := validator.ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "message", Message: "too short"},
	}
	assert.Equal(t, "validation failed: email: is required; message: too short", errs.Error())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(passing("a"), passing("b")))
	})

	t.Run("nil with no rules", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
	})

	t.Run("reports every failure in rule order", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(failing("name", "x"), passing("email"), failing("message", "y"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "message", errs[1].Field)
	})
}

func TestWhen(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.When(false, failing("email", "x")))
	assert.Len(t, validator.When(true, failing("email", "x"), passing("email")), 2)

	rules := append([]validator.Rule{passing("name")}, validator.When(false, failing("email", "x"))...)
	assert.NoError(t, validator.Apply(rules...))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("submit: %w", validator.Apply(failing("email", "x")))
	errs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}
