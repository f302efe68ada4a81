package agreement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrpms/pms-backend-go/internal/domain/user"
)

func testAgreement(status Status) Agreement {
	return Agreement{
		ID:           "ag-1",
		Title:        "FY Targets",
		Status:       status,
		CreatorID:    "emp-1",
		SupervisorID: "sup-1",
		HODID:        "hod-1",
	}
}

func TestResolveActionsOwnerDraft(t *testing.T) {
	a := testAgreement(StatusDraft)
	got := ResolveActions(a, Viewer{ID: "emp-1", Role: user.RoleEmployee})

	assert.True(t, got.CanPreview)
	assert.True(t, got.CanEdit)
	assert.True(t, got.CanSubmit)
	assert.True(t, got.CanDelete)
	assert.False(t, got.CanReview)
}

func TestResolveActionsOwnerAfterSubmission(t *testing.T) {
	a := testAgreement(StatusPendingSupervisor)
	got := ResolveActions(a, Viewer{ID: "emp-1", Role: user.RoleEmployee})

	assert.True(t, got.CanPreview)
	assert.False(t, got.CanEdit)
	assert.False(t, got.CanSubmit)
	assert.False(t, got.CanDelete)
	assert.False(t, got.CanReview)
}

// A rejection hands the agreement back to the creator for rework.
func TestResolveActionsOwnerAfterRejection(t *testing.T) {
	for _, s := range []Status{StatusRejected, StatusRejectedBySupervisor, StatusRejectedByHOD} {
		got := ResolveActions(testAgreement(s), Viewer{ID: "emp-1", Role: user.RoleEmployee})
		assert.True(t, got.CanEdit, string(s))
		assert.True(t, got.CanSubmit, string(s))
		assert.True(t, got.CanDelete, string(s))
	}
}

func TestResolveActionsReviewIsStageBound(t *testing.T) {
	sup := Viewer{ID: "sup-1", Role: user.RoleSupervisor}
	hod := Viewer{ID: "hod-1", Role: user.RoleHOD}

	pendingSup := testAgreement(StatusPendingSupervisor)
	assert.True(t, ResolveActions(pendingSup, sup).CanReview)
	assert.False(t, ResolveActions(pendingSup, hod).CanReview)

	pendingHOD := testAgreement(StatusPendingHOD)
	assert.False(t, ResolveActions(pendingHOD, sup).CanReview)
	assert.True(t, ResolveActions(pendingHOD, hod).CanReview)

	// Role alone grants nothing: an unassigned supervisor cannot review.
	other := Viewer{ID: "sup-99", Role: user.RoleSupervisor}
	assert.False(t, ResolveActions(pendingSup, other).CanReview)
	assert.False(t, ResolveActions(pendingSup, other).CanPreview)
}

func TestResolveActionsAdminPreviewOnly(t *testing.T) {
	a := testAgreement(StatusPendingHOD)
	got := ResolveActions(a, Viewer{ID: "admin-1", Role: user.RoleAdmin})

	assert.True(t, got.CanPreview)
	assert.False(t, got.CanEdit)
	assert.False(t, got.CanReview)
}
