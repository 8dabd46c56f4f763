package errors

import (
	"net/http"
	"testing"

	"routecast/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInsufficientTrainingData.WithDetails("Need at least 10 trips to train. You have 9.")
	wrapped := errors.Wrap(detailed, "train")

	assert.True(t, errors.Is(wrapped, ErrInsufficientTrainingData))
	assert.False(t, errors.Is(wrapped, ErrTrainingFailed))
	assert.Equal(t, "Need at least 10 trips to train. You have 9.", detailed.Details())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "list trips")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "list trips", err.Details())
}
