package agreement

// Action carries the approve-vs-reject intent of a review decision.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// IsEditable reports whether the creator may still edit, submit or delete.
// Rejection is not terminal for the creator: a rejected agreement can be
// revised and resubmitted.
func IsEditable(s Status) bool {
	switch s {
	case StatusDraft, StatusRejected, StatusRejectedBySupervisor, StatusRejectedByHOD:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further reviewer action applies.
func IsTerminal(s Status) bool {
	switch s {
	case StatusApproved, StatusRejected, StatusRejectedBySupervisor, StatusRejectedByHOD:
		return true
	default:
		return false
	}
}

// NextOnSubmit returns the status after the creator submits. Submission is
// allowed from draft or any rejected state and always lands in the
// supervisor's queue.
func NextOnSubmit(s Status) (Status, error) {
	if !IsEditable(s) {
		return s, ErrAgreementAlreadyProcessed
	}
	return StatusPendingSupervisor, nil
}

// NextOnSupervisorDecision returns the status after the assigned supervisor
// decides. Only agreements sitting in pending_supervisor can be decided.
func NextOnSupervisorDecision(s Status, action Action) (Status, error) {
	if s != StatusPendingSupervisor {
		return s, ErrAgreementAlreadyProcessed
	}
	switch action {
	case ActionApprove:
		return StatusPendingHOD, nil
	case ActionReject:
		return StatusRejectedBySupervisor, nil
	default:
		return s, ErrInvalidAction
	}
}

// NextOnHODDecision returns the status after the assigned HOD decides.
func NextOnHODDecision(s Status, action Action) (Status, error) {
	if s != StatusPendingHOD {
		return s, ErrAgreementAlreadyProcessed
	}
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejectedByHOD, nil
	default:
		return s, ErrInvalidAction
	}
}
