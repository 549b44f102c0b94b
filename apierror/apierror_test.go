package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromUnwrapsAPIError(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NotFound("Planet not found"))

	apiErr, ok := From(wrapped)

	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Planet not found", apiErr.Message)
}

func TestFromPlainErrorIsInternal(t *testing.T) {
	apiErr, ok := From(errors.New("connection reset"))

	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal server error", apiErr.Message)
}

func TestConstructorsStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").StatusCode)
	assert.Equal(t, http.StatusConflict, Conflict("x").StatusCode)
	assert.Equal(t, "x", BadRequest("x").Error())
}
