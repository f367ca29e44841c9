package validate

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want bool
	}{
		{in: "jane@example.com", want: true},
		{in: "a@b.c", want: true},
		{in: "first.last@sub.example.org", want: true},
		{in: "foo@", want: false},
		{in: "foo.com", want: false},
		{in: "foo@bar", want: false},
		{in: "foo bar@example.com", want: false},
		{in: "", want: false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Email(tc.in), tc.in)
	}
}

func TestNewUsesJSONNames(t *testing.T) {
	t.Parallel()

	type req struct {
		Mail string `json:"email" validate:"required,bkemail"`
	}

	err := New().Struct(req{Mail: "foo@"})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.True(t, errors.As(err, &validateErr))
	require.Len(t, validateErr, 1)
	assert.Equal(t, "email", validateErr[0].Field())
	assert.Equal(t, "bkemail", validateErr[0].Tag())
}
