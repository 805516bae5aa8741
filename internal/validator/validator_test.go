package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Content         string `json:"content" validate:"required,notblank"`
	Role            string `json:"role" validate:"required,is-user-role"`
	Filter          string `json:"filter" validate:"omitempty,is-discover-role"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func validSample() sampleRequest {
	return sampleRequest{
		Email:           "a@x.com",
		Content:         "hello",
		Role:            "creator",
		Filter:          "all",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestValidate_OK(t *testing.T) {
	v := New()
	req := validSample()
	assert.NoError(t, v.Validate(&req))
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	req := validSample()
	req.Email = "not-an-email"
	req.Content = "   "
	req.Role = "admin"
	req.Filter = "everyone"
	req.ConfirmPassword = "other"

	err := v.Validate(&req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Must not be blank", vErr.Errors["content"])
	assert.Equal(t, "Must be one of: creator, sponsor", vErr.Errors["role"])
	assert.Equal(t, "Must be one of: creator, sponsor, all", vErr.Errors["filter"])
	assert.Equal(t, "Must match password", vErr.Errors["confirmPassword"])
	assert.NotContains(t, vErr.Errors, "password")
	assert.Contains(t, vErr.Error(), "field 'content'")
}

func TestValidate_Required(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{})

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["role"])
	assert.NotContains(t, vErr.Errors, "filter")
}
