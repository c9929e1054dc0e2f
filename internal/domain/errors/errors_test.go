package errors

import (
	"fmt"
	"net/http"
	"testing"

	"eventradar/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrNotFound.WithDetails("job nightly")

	assert.True(t, errors.Is(detailed, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("trigger: %w", detailed), ErrNotFound))
	assert.False(t, errors.Is(detailed, ErrRecipientNotFound))
	assert.Equal(t, "job nightly", detailed.Details())
	assert.Empty(t, ErrNotFound.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert event")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
