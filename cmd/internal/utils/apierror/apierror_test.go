package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelCodes(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, InternalServerError.Code())
	assert.Equal(t, http.StatusNotFound, NotFoundError.Code())
	assert.Equal(t, http.StatusBadRequest, MalformedBodyError.Code())
	assert.Equal(t, http.StatusConflict, SlotUnavailableError.Code())
}

func TestNewMissingParamError(t *testing.T) {
	apierr := NewMissingParamError("date")
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	assert.Contains(t, apierr.Error(), "date")
}

func TestFromValidationError(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
		Room  int    `validate:"required,oneof=1 2"`
	}

	err := validator.New().Struct(&req{Email: "nope", Room: 5})
	require.Error(t, err)

	apierr := FromValidationError(err)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())

	verr, ok := apierr.(*ValidationError)
	require.True(t, ok)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "Email", verr.Fields[0].Field)
	assert.Equal(t, "email", verr.Fields[0].Rule)
	assert.Equal(t, "Room", verr.Fields[1].Field)
	assert.Equal(t, "oneof", verr.Fields[1].Rule)
}

func TestFromValidationErrorWithUnexpectedError(t *testing.T) {
	apierr := FromValidationError(errors.New("boom"))
	assert.Equal(t, MalformedBodyError, apierr)
}
