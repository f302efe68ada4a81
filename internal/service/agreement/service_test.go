package agreement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
	"github.com/hrpms/pms-backend-go/internal/domain/user"
)

// fakeAgreementRepo is an in-memory AgreementRepository with the same guarded
// status-write semantics as the real one.
type fakeAgreementRepo struct {
	items map[string]agreement.Agreement
}

func newFakeAgreementRepo(items ...agreement.Agreement) *fakeAgreementRepo {
	r := &fakeAgreementRepo{items: make(map[string]agreement.Agreement)}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAgreementRepo) Create(_ context.Context, a agreement.Agreement) (agreement.Agreement, error) {
	r.items[a.ID] = a
	return a, nil
}

func (r *fakeAgreementRepo) GetByID(_ context.Context, id string) (agreement.Agreement, error) {
	a, ok := r.items[id]
	if !ok {
		return agreement.Agreement{}, agreement.ErrAgreementNotFound
	}
	return a, nil
}

func (r *fakeAgreementRepo) ListByCreator(_ context.Context, creatorID string) ([]agreement.Agreement, error) {
	var out []agreement.Agreement
	for _, a := range r.items {
		if a.CreatorID == creatorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAgreementRepo) ListByDepartment(_ context.Context, departmentID *string) ([]agreement.Agreement, error) {
	var out []agreement.Agreement
	for _, a := range r.items {
		if departmentID == nil || a.DepartmentID == *departmentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAgreementRepo) Update(_ context.Context, req agreement.UpdateAgreementRequest) error {
	a, ok := r.items[req.ID]
	if !ok {
		return agreement.ErrAgreementNotFound
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	r.items[req.ID] = a
	return nil
}

func (r *fakeAgreementRepo) UpdateStatus(_ context.Context, upd agreement.StatusUpdate) error {
	a, ok := r.items[upd.ID]
	if !ok {
		return agreement.ErrAgreementNotFound
	}
	if a.Status != upd.Expect {
		return agreement.ErrAgreementAlreadyProcessed
	}
	a.Status = upd.Status
	if upd.SubmittedAt != nil {
		a.SubmittedAt = upd.SubmittedAt
	}
	if upd.SupervisorComment != nil {
		a.SupervisorComment = upd.SupervisorComment
	}
	if upd.HODComment != nil {
		a.HODComment = upd.HODComment
	}
	r.items[upd.ID] = a
	return nil
}

func (r *fakeAgreementRepo) ReplaceMeasures(_ context.Context, _ string, _ []agreement.MeasureInput) error {
	return nil
}

func (r *fakeAgreementRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return agreement.ErrAgreementNotFound
	}
	delete(r.items, id)
	return nil
}

func draftAgreement() agreement.Agreement {
	return agreement.Agreement{
		ID:           "ag-1",
		Title:        "Annual Targets",
		Period:       agreement.PeriodAnnual,
		Status:       agreement.StatusDraft,
		CreatorID:    "emp-1",
		SupervisorID: "sup-1",
		HODID:        "hod-1",
		DepartmentID: "dept-fin",
		CreatedAt:    time.Now(),
	}
}

var (
	owner      = agreement.Viewer{ID: "emp-1", Role: user.RoleEmployee}
	supervisor = agreement.Viewer{ID: "sup-1", Role: user.RoleSupervisor}
	hod        = agreement.Viewer{ID: "hod-1", Role: user.RoleHOD}
)

func newService(repo *fakeAgreementRepo) AgreementService {
	return NewAgreementService(nil, repo, nil)
}

// Submitting moves the same agreement (same id) to pending_supervisor; no
// second row appears.
func TestSubmitMovesDraftToPendingSupervisor(t *testing.T) {
	repo := newFakeAgreementRepo(draftAgreement())
	svc := newService(repo)

	resp, err := svc.Submit(context.Background(), owner, "ag-1")
	require.NoError(t, err)

	assert.Equal(t, "ag-1", resp.ID)
	assert.Equal(t, agreement.StatusPendingSupervisor, resp.Status)
	assert.NotNil(t, resp.SubmittedAt)
	assert.Len(t, repo.items, 1)
}

func TestSubmitByNonOwnerRejected(t *testing.T) {
	repo := newFakeAgreementRepo(draftAgreement())
	svc := newService(repo)

	_, err := svc.Submit(context.Background(), supervisor, "ag-1")
	assert.ErrorIs(t, err, agreement.ErrNotAgreementOwner)
}

func TestSubmitTwiceFails(t *testing.T) {
	repo := newFakeAgreementRepo(draftAgreement())
	svc := newService(repo)

	_, err := svc.Submit(context.Background(), owner, "ag-1")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), owner, "ag-1")
	assert.ErrorIs(t, err, agreement.ErrAgreementAlreadyProcessed)
}

func TestSupervisorApproveAdvancesToPendingHOD(t *testing.T) {
	a := draftAgreement()
	a.Status = agreement.StatusPendingSupervisor
	repo := newFakeAgreementRepo(a)
	svc := newService(repo)

	resp, err := svc.SupervisorDecide(context.Background(), supervisor, "ag-1", agreement.DecisionRequest{Action: "approve"})
	require.NoError(t, err)
	assert.Equal(t, agreement.StatusPendingHOD, resp.Status)
}

func TestSupervisorDecideRequiresAssignment(t *testing.T) {
	a := draftAgreement()
	a.Status = agreement.StatusPendingSupervisor
	repo := newFakeAgreementRepo(a)
	svc := newService(repo)

	other := agreement.Viewer{ID: "sup-99", Role: user.RoleSupervisor}
	_, err := svc.SupervisorDecide(context.Background(), other, "ag-1", agreement.DecisionRequest{Action: "approve"})
	assert.ErrorIs(t, err, agreement.ErrNotAssignedReviewer)
}

// An HOD rejection carries the comment and drops the agreement out of the
// pending_hod review projection.
func TestHODRejectRemovesFromReviewQueue(t *testing.T) {
	a := draftAgreement()
	a.Status = agreement.StatusPendingHOD
	repo := newFakeAgreementRepo(a)
	svc := newService(repo)

	resp, err := svc.HODDecide(context.Background(), hod, "ag-1", agreement.DecisionRequest{
		Action:  "reject",
		Comment: "targets not measurable",
	})
	require.NoError(t, err)
	assert.Equal(t, agreement.StatusRejectedByHOD, resp.Status)
	require.NotNil(t, resp.HODComment)
	assert.Equal(t, "targets not measurable", *resp.HODComment)

	items, total, _, err := svc.ListForReview(context.Background(), hod, nil, agreement.ListQuery{
		Filter: agreement.Filter{
			DepartmentID: "dept-fin",
			Status:       string(agreement.StatusPendingHOD),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
}

func TestHODRejectRequiresComment(t *testing.T) {
	a := draftAgreement()
	a.Status = agreement.StatusPendingHOD
	repo := newFakeAgreementRepo(a)
	svc := newService(repo)

	_, err := svc.HODDecide(context.Background(), hod, "ag-1", agreement.DecisionRequest{Action: "reject"})
	assert.Error(t, err)
}

func TestListMyIncludesDrafts(t *testing.T) {
	repo := newFakeAgreementRepo(draftAgreement())
	svc := newService(repo)

	items, total, totalPages, err := svc.ListMy(context.Background(), owner, agreement.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, totalPages)
	require.Len(t, items, 1)
	assert.True(t, items[0].Actions.CanSubmit)
}

func TestListForReviewAnchorsToViewerDepartment(t *testing.T) {
	a := draftAgreement()
	a.Status = agreement.StatusPendingSupervisor

	other := draftAgreement()
	other.ID = "ag-2"
	other.Status = agreement.StatusPendingSupervisor
	other.DepartmentID = "dept-hr"

	repo := newFakeAgreementRepo(a, other)
	svc := newService(repo)

	dept := "dept-fin"
	items, total, _, err := svc.ListForReview(context.Background(), supervisor, &dept, agreement.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "ag-1", items[0].ID)
}

func TestListForReviewWithoutDepartmentFails(t *testing.T) {
	repo := newFakeAgreementRepo()
	svc := newService(repo)

	_, _, _, err := svc.ListForReview(context.Background(), supervisor, nil, agreement.ListQuery{})
	assert.ErrorIs(t, err, user.ErrDepartmentRequired)
}

// Admins may fetch across departments.
func TestListForReviewAdminCrossDepartment(t *testing.T) {
	a := draftAgreement()
	a.Status = agreement.StatusPendingSupervisor

	other := draftAgreement()
	other.ID = "ag-2"
	other.Status = agreement.StatusPendingHOD
	other.DepartmentID = "dept-hr"

	repo := newFakeAgreementRepo(a, other)
	svc := newService(repo)

	admin := agreement.Viewer{ID: "admin-1", Role: user.RoleAdmin}
	_, total, _, err := svc.ListForReview(context.Background(), admin, nil, agreement.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestDeleteAgreementOwnerOnlyWhileEditable(t *testing.T) {
	a := draftAgreement()
	a.Status = agreement.StatusPendingSupervisor
	repo := newFakeAgreementRepo(a)
	svc := newService(repo)

	err := svc.DeleteAgreement(context.Background(), owner, "ag-1")
	assert.ErrorIs(t, err, agreement.ErrAgreementNotEditable)

	repo2 := newFakeAgreementRepo(draftAgreement())
	svc2 := newService(repo2)
	require.NoError(t, svc2.DeleteAgreement(context.Background(), owner, "ag-1"))
	assert.Empty(t, repo2.items)
}

func TestGetAgreementHiddenFromOutsiders(t *testing.T) {
	repo := newFakeAgreementRepo(draftAgreement())
	svc := newService(repo)

	outsider := agreement.Viewer{ID: "emp-99", Role: user.RoleEmployee}
	_, err := svc.GetAgreement(context.Background(), outsider, "ag-1")
	assert.ErrorIs(t, err, agreement.ErrAgreementNotFound)

	resp, err := svc.GetAgreement(context.Background(), supervisor, "ag-1")
	require.NoError(t, err)
	assert.Equal(t, "ag-1", resp.ID)
}
