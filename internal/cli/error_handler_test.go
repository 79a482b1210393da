package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"hourlog/internal/errors"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("app error uses the user message", func(t *testing.T) {
		err := eh.Handle("clock in", errors.NewConflictError("already clocked in for project 'a' at '2024-01-01 09:00:00'"))
		assert.Equal(t, "failed to clock in: already clocked in for project 'a' at '2024-01-01 09:00:00'", err.Error())
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := eh.Handle("save timesheet", cause)
		assert.Equal(t, "failed to save timesheet: disk full", err.Error())
		assert.True(t, stderrors.Is(err, cause))
	})
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	err := eh.HandleSimple(errors.NewValidationError("no project name was given", nil))
	assert.Equal(t, "no project name was given", err.Error())
}

func TestErrorHandler_TypeChecks(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsValidationError(errors.NewValidationError("bad", nil)))
	assert.False(t, eh.IsValidationError(errors.NewNotFoundError("missing")))
	assert.True(t, eh.IsNotFoundError(errors.NewNotFoundError("missing")))
	assert.False(t, eh.IsNotFoundError(stderrors.New("plain")))
}
