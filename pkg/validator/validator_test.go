package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=Admin User"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "a", Email: "a@b.co"}))

	err := v.Validate(&sample{Email: "a@b.co", Role: "Root"})
	assert.Error(t, err)
	assert.Equal(t, []string{"name"}, MissingFields(err))
	assert.Equal(t, "name is required; role must be one of [Admin User]", Describe(err))
}

func TestMissingFields_NotValidationError(t *testing.T) {
	assert.Nil(t, MissingFields(assert.AnError))
	assert.Equal(t, assert.AnError.Error(), Describe(assert.AnError))
}
