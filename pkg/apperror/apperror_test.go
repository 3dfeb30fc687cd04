package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	status, message := Translate(NotFound("Request with id req-404 not found"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Request with id req-404 not found", message)

	status, message = Translate(BadRequest("Only pending requests can be deleted"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Only pending requests can be deleted", message)
}

func TestTranslateWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handling approval: %w", BadRequest("Request is already approved"))
	status, message := Translate(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Request is already approved", message)
}

func TestTranslateUnknownErrorIsGeneric(t *testing.T) {
	status, message := Translate(errors.New("pq: duplicate key value violates unique constraint"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", message)
}
