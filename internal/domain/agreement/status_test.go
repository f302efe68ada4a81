package agreement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatusKnownValues(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		color  string
	}{
		{StatusDraft, "Draft", "gray"},
		{StatusSubmitted, "Submitted", "blue"},
		{StatusPendingSupervisor, "Pending Supervisor", "amber"},
		{StatusPendingHOD, "Pending HOD", "amber"},
		{StatusApprovedSupervisor, "Approved by Supervisor", "teal"},
		{StatusApproved, "Approved", "green"},
		{StatusRejectedBySupervisor, "Rejected by Supervisor", "red"},
		{StatusRejectedByHOD, "Rejected by HOD", "red"},
		{StatusRejected, "Rejected", "red"},
	}

	for _, tt := range tests {
		info := ResolveStatus(tt.status)
		assert.Equal(t, tt.label, info.Label, string(tt.status))
		assert.Equal(t, tt.color, info.Color, string(tt.status))
	}
}

// The mapping must be total: any string resolves without panicking, falling
// back to the raw value with a neutral color.
func TestResolveStatusUnknownValueFallsBack(t *testing.T) {
	for _, raw := range []string{"", "archived", "ReJeCtEd", "pending_review_2"} {
		info := ResolveStatus(Status(raw))
		assert.Equal(t, raw, info.Label)
		assert.Equal(t, "neutral", info.Color)
	}
}
