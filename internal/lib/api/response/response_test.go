package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Rate  int    `validate:"min=1,max=10"`
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(sample{Email: "not-an-email", Rate: 11})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.ErrorAs(t, err, &validateErr)

	resp := ValidationError(validateErr)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Name is a required field")
	assert.Contains(t, resp.Error, "field Email is not a valid email")
	assert.Contains(t, resp.Error, "field Rate must be at most 10")
}

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, Error("boom"))
}
