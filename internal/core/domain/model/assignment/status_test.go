package assignment_test

import (
	"errors"
	"testing"

	"attendance/internal/core/domain/model/assignment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []assignment.Status{
	assignment.Applied,
	assignment.Assigned,
	assignment.InProgress,
	assignment.Completed,
	assignment.BookedOff,
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := map[[2]assignment.Status]bool{
		{assignment.Applied, assignment.Assigned}:     true,
		{assignment.Assigned, assignment.InProgress}:  true,
		{assignment.InProgress, assignment.Completed}: true,
		{assignment.InProgress, assignment.BookedOff}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got, err := from.TransitionTo(to)

			if allowed[[2]assignment.Status{from, to}] {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got)
				continue
			}

			require.ErrorIs(t, err, assignment.ErrInvalidTransition, "%s -> %s", from, to)
			assert.Equal(t, from, got)

			var transitionErr *assignment.InvalidTransitionError
			require.True(t, errors.As(err, &transitionErr))
			assert.Equal(t, from, transitionErr.From)
			assert.Equal(t, to, transitionErr.To)
		}
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, assignment.Completed.IsTerminal())
	assert.True(t, assignment.BookedOff.IsTerminal())
	assert.False(t, assignment.InProgress.IsTerminal())

	assert.True(t, assignment.Assigned.IsActive())
	assert.True(t, assignment.InProgress.IsActive())
	assert.False(t, assignment.Applied.IsActive())
	assert.False(t, assignment.Completed.IsActive())
}

func TestStatus_Strings(t *testing.T) {
	for _, s := range allStatuses {
		require.NoError(t, s.Validate())

		parsed, err := assignment.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	assert.Error(t, assignment.Status(0).Validate())
	assert.Equal(t, "unknown", assignment.Status(17).String())

	_, err := assignment.ParseStatus("cancelled")
	assert.Error(t, err)
}

func TestInvalidTransitionError_Error(t *testing.T) {
	err := &assignment.InvalidTransitionError{From: assignment.Applied, To: assignment.InProgress}

	assert.Equal(t, "invalid transition: applied -> inProgress", err.Error())
}
