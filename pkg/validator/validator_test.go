package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Age    int    `validate:"gt=0"`
	Email  string `validate:"required,email"`
	Theme  string `validate:"oneof=light dark"`
	Link   string `validate:"omitempty,url"`
	Secret string `validate:"min=8"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Age: 0, Email: "nope", Theme: "blue", Link: "not a url", Secret: "short"})
	require.Error(t, err)

	msgs := v.FormatValidationErrors(err)
	assert.Equal(t, "Age must be greater than 0", msgs["Age"])
	assert.Equal(t, "Email must be a valid email address", msgs["Email"])
	assert.Equal(t, "Theme must be one of: light dark", msgs["Theme"])
	assert.Equal(t, "Link must be a valid URL", msgs["Link"])
	assert.Equal(t, "Secret must be at least 8 characters", msgs["Secret"])
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&sample{Age: 3, Email: "a@example.com", Theme: "dark", Secret: "longenough"})
	assert.NoError(t, err)
	assert.Empty(t, v.FormatValidationErrors(err))
}
