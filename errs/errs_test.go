package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, Status(ErrNotFound))
	assert.Equal(t, http.StatusConflict, Status(ErrInvalidTransition))
	assert.Equal(t, http.StatusBadRequest, Status(ErrValidation))
	assert.Equal(t, http.StatusUnauthorized, Status(ErrUnauthorized))
	assert.Equal(t, http.StatusBadGateway, Status(ErrPersistenceFailure))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("order MX-1: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, Status(wrapped))
}
