package agreement

import "github.com/hrpms/pms-backend-go/internal/domain/user"

// Viewer identifies who is looking at an agreement.
type Viewer struct {
	ID   string
	Role user.RoleName
}

// ActionSet lists the row-level actions available to a viewer. It is the
// single capability-resolution point; handlers and serializers consume it
// instead of re-deriving status conditionals.
type ActionSet struct {
	CanPreview bool `json:"can_preview"`
	CanEdit    bool `json:"can_edit"`
	CanSubmit  bool `json:"can_submit"`
	CanDelete  bool `json:"can_delete"`
	CanReview  bool `json:"can_review"`
}

// ResolveActions computes the ActionSet for a viewer against an agreement.
//
// Ownership gates editing: only the creator may edit/submit/delete, and only
// while the agreement is editable. Review is gated to the assigned party for
// the current stage. Preview is open to every workflow participant and to
// admins.
func ResolveActions(a Agreement, v Viewer) ActionSet {
	owner := v.ID == a.CreatorID
	editable := IsEditable(a.Status)

	canReview := false
	switch a.Status {
	case StatusPendingSupervisor:
		canReview = v.ID == a.SupervisorID
	case StatusPendingHOD:
		canReview = v.ID == a.HODID
	}

	return ActionSet{
		CanPreview: owner || v.ID == a.SupervisorID || v.ID == a.HODID || v.Role == user.RoleAdmin,
		CanEdit:    owner && editable,
		CanSubmit:  owner && editable,
		CanDelete:  owner && editable,
		CanReview:  canReview,
	}
}
