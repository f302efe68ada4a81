package agreement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOnSubmit(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusRejected, StatusRejectedBySupervisor, StatusRejectedByHOD} {
		next, err := NextOnSubmit(s)
		assert.NoError(t, err, string(s))
		assert.Equal(t, StatusPendingSupervisor, next)
	}

	for _, s := range []Status{StatusPendingSupervisor, StatusPendingHOD, StatusApproved, StatusSubmitted} {
		_, err := NextOnSubmit(s)
		assert.ErrorIs(t, err, ErrAgreementAlreadyProcessed, string(s))
	}
}

func TestNextOnSupervisorDecision(t *testing.T) {
	next, err := NextOnSupervisorDecision(StatusPendingSupervisor, ActionApprove)
	assert.NoError(t, err)
	assert.Equal(t, StatusPendingHOD, next)

	next, err = NextOnSupervisorDecision(StatusPendingSupervisor, ActionReject)
	assert.NoError(t, err)
	assert.Equal(t, StatusRejectedBySupervisor, next)

	_, err = NextOnSupervisorDecision(StatusPendingHOD, ActionApprove)
	assert.ErrorIs(t, err, ErrAgreementAlreadyProcessed)

	_, err = NextOnSupervisorDecision(StatusPendingSupervisor, Action("escalate"))
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestNextOnHODDecision(t *testing.T) {
	next, err := NextOnHODDecision(StatusPendingHOD, ActionApprove)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, next)

	next, err = NextOnHODDecision(StatusPendingHOD, ActionReject)
	assert.NoError(t, err)
	assert.Equal(t, StatusRejectedByHOD, next)

	_, err = NextOnHODDecision(StatusApproved, ActionReject)
	assert.ErrorIs(t, err, ErrAgreementAlreadyProcessed)
}

// approved_supervisor is recognized but unreachable: nothing transitions
// into it and nothing transitions out of it.
func TestApprovedSupervisorIsUnreachable(t *testing.T) {
	_, err := NextOnSubmit(StatusApprovedSupervisor)
	assert.Error(t, err)
	_, err = NextOnSupervisorDecision(StatusApprovedSupervisor, ActionApprove)
	assert.Error(t, err)
	_, err = NextOnHODDecision(StatusApprovedSupervisor, ActionApprove)
	assert.Error(t, err)

	assert.False(t, IsEditable(StatusApprovedSupervisor))
	assert.False(t, IsTerminal(StatusApprovedSupervisor))
}

func TestIsEditable(t *testing.T) {
	assert.True(t, IsEditable(StatusDraft))
	assert.True(t, IsEditable(StatusRejected))
	assert.True(t, IsEditable(StatusRejectedBySupervisor))
	assert.True(t, IsEditable(StatusRejectedByHOD))
	assert.False(t, IsEditable(StatusPendingSupervisor))
	assert.False(t, IsEditable(StatusApproved))
}
