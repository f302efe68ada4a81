package agreement

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
	"github.com/hrpms/pms-backend-go/internal/domain/user"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
	"github.com/hrpms/pms-backend-go/internal/repository/postgresql"
)

type AgreementService interface {
	CreateAgreement(ctx context.Context, viewer agreement.Viewer, req agreement.CreateAgreementRequest) (agreement.AgreementResponse, error)
	GetAgreement(ctx context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error)
	UpdateAgreement(ctx context.Context, viewer agreement.Viewer, req agreement.UpdateAgreementRequest) error
	DeleteAgreement(ctx context.Context, viewer agreement.Viewer, id string) error

	Submit(ctx context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error)
	SupervisorDecide(ctx context.Context, viewer agreement.Viewer, id string, req agreement.DecisionRequest) (agreement.AgreementResponse, error)
	HODDecide(ctx context.Context, viewer agreement.Viewer, id string, req agreement.DecisionRequest) (agreement.AgreementResponse, error)

	ListMy(ctx context.Context, viewer agreement.Viewer, query agreement.ListQuery) ([]agreement.AgreementResponse, int, int, error)
	ListForReview(ctx context.Context, viewer agreement.Viewer, viewerDepartmentID *string, query agreement.ListQuery) ([]agreement.AgreementResponse, int, int, error)
}

type agreementServiceImpl struct {
	db            *database.DB
	agreementRepo agreement.AgreementRepository
	userRepo      user.UserRepository
}

func NewAgreementService(db *database.DB, agreementRepo agreement.AgreementRepository, userRepo user.UserRepository) AgreementService {
	return &agreementServiceImpl{
		db:            db,
		agreementRepo: agreementRepo,
		userRepo:      userRepo,
	}
}

// CreateAgreement implements AgreementService. New agreements start in draft
// and snapshot the creator's department as the review scope.
func (s *agreementServiceImpl) CreateAgreement(ctx context.Context, viewer agreement.Viewer, req agreement.CreateAgreementRequest) (agreement.AgreementResponse, error) {
	if err := req.Validate(); err != nil {
		return agreement.AgreementResponse{}, err
	}

	creator, err := s.userRepo.GetByID(ctx, viewer.ID)
	if err != nil {
		return agreement.AgreementResponse{}, fmt.Errorf("failed to get creator: %w", err)
	}
	if creator.DepartmentID == nil {
		return agreement.AgreementResponse{}, user.ErrDepartmentRequired
	}

	supervisor, err := s.userRepo.GetByID(ctx, req.SupervisorID)
	if err != nil {
		return agreement.AgreementResponse{}, fmt.Errorf("failed to get supervisor: %w", err)
	}
	if !supervisor.IsReviewer() {
		return agreement.AgreementResponse{}, user.ErrInvalidReviewer
	}

	hod, err := s.userRepo.GetByID(ctx, req.HODID)
	if err != nil {
		return agreement.AgreementResponse{}, fmt.Errorf("failed to get hod: %w", err)
	}
	if !hod.IsReviewer() {
		return agreement.AgreementResponse{}, user.ErrInvalidReviewer
	}

	measures := make([]agreement.Measure, 0, len(req.Measures))
	for i, m := range req.Measures {
		measures = append(measures, agreement.Measure{
			Name:             m.Name,
			SelfRating:       m.SelfRating,
			ActualValue:      m.ActualValue,
			EmployeeComments: m.EmployeeComments,
			SortOrder:        i,
		})
	}

	var created agreement.Agreement
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.agreementRepo.Create(txCtx, agreement.Agreement{
			Title:        req.Title,
			Period:       agreement.Period(req.Period),
			Status:       agreement.StatusDraft,
			CreatorID:    viewer.ID,
			SupervisorID: req.SupervisorID,
			HODID:        req.HODID,
			DepartmentID: *creator.DepartmentID,
			Measures:     measures,
		})
		return err
	})
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	return agreement.ToResponse(created, viewer), nil
}

// GetAgreement implements AgreementService. Non-participants get not-found
// rather than a hint that the agreement exists.
func (s *agreementServiceImpl) GetAgreement(ctx context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error) {
	found, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	actions := agreement.ResolveActions(found, viewer)
	if !actions.CanPreview {
		return agreement.AgreementResponse{}, agreement.ErrAgreementNotFound
	}

	return agreement.ToResponse(found, viewer), nil
}

// UpdateAgreement implements AgreementService. Only the creator may edit, and
// only while the agreement is in an editable state. Measures travel with the
// agreement and are replaced wholesale.
func (s *agreementServiceImpl) UpdateAgreement(ctx context.Context, viewer agreement.Viewer, req agreement.UpdateAgreementRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.agreementRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if found.CreatorID != viewer.ID {
		return agreement.ErrNotAgreementOwner
	}
	if !agreement.IsEditable(found.Status) {
		return agreement.ErrAgreementNotEditable
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.agreementRepo.Update(txCtx, req); err != nil {
			return err
		}
		if req.Measures != nil {
			if err := s.agreementRepo.ReplaceMeasures(txCtx, req.ID, *req.Measures); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAgreement implements AgreementService.
func (s *agreementServiceImpl) DeleteAgreement(ctx context.Context, viewer agreement.Viewer, id string) error {
	found, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if found.CreatorID != viewer.ID {
		return agreement.ErrNotAgreementOwner
	}
	if !agreement.IsEditable(found.Status) {
		return agreement.ErrAgreementNotEditable
	}

	return s.agreementRepo.Delete(ctx, id)
}

// Submit implements AgreementService. The status write is guarded on the
// status that was read, so two concurrent submits cannot both succeed.
func (s *agreementServiceImpl) Submit(ctx context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error) {
	found, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	if found.CreatorID != viewer.ID {
		return agreement.AgreementResponse{}, agreement.ErrNotAgreementOwner
	}

	next, err := agreement.NextOnSubmit(found.Status)
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	now := time.Now()
	err = s.agreementRepo.UpdateStatus(ctx, agreement.StatusUpdate{
		ID:          id,
		Expect:      found.Status,
		Status:      next,
		SubmittedAt: &now,
	})
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	return s.reload(ctx, viewer, id)
}

// SupervisorDecide implements AgreementService.
func (s *agreementServiceImpl) SupervisorDecide(ctx context.Context, viewer agreement.Viewer, id string, req agreement.DecisionRequest) (agreement.AgreementResponse, error) {
	if err := req.Validate(); err != nil {
		return agreement.AgreementResponse{}, err
	}

	found, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	if found.SupervisorID != viewer.ID {
		return agreement.AgreementResponse{}, agreement.ErrNotAssignedReviewer
	}

	next, err := agreement.NextOnSupervisorDecision(found.Status, agreement.Action(req.Action))
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	upd := agreement.StatusUpdate{
		ID:     id,
		Expect: found.Status,
		Status: next,
	}
	if req.Comment != "" {
		upd.SupervisorComment = &req.Comment
	}

	if err := s.agreementRepo.UpdateStatus(ctx, upd); err != nil {
		return agreement.AgreementResponse{}, err
	}

	return s.reload(ctx, viewer, id)
}

// HODDecide implements AgreementService.
func (s *agreementServiceImpl) HODDecide(ctx context.Context, viewer agreement.Viewer, id string, req agreement.DecisionRequest) (agreement.AgreementResponse, error) {
	if err := req.Validate(); err != nil {
		return agreement.AgreementResponse{}, err
	}

	found, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	if found.HODID != viewer.ID {
		return agreement.AgreementResponse{}, agreement.ErrNotAssignedReviewer
	}

	next, err := agreement.NextOnHODDecision(found.Status, agreement.Action(req.Action))
	if err != nil {
		return agreement.AgreementResponse{}, err
	}

	upd := agreement.StatusUpdate{
		ID:     id,
		Expect: found.Status,
		Status: next,
	}
	if req.Comment != "" {
		upd.HODComment = &req.Comment
	}

	if err := s.agreementRepo.UpdateStatus(ctx, upd); err != nil {
		return agreement.AgreementResponse{}, err
	}

	return s.reload(ctx, viewer, id)
}

func (s *agreementServiceImpl) reload(ctx context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error) {
	updated, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return agreement.AgreementResponse{}, err
	}
	return agreement.ToResponse(updated, viewer), nil
}

// ListMy implements AgreementService: the creator's own agreements, drafts
// included. Returns the page, the filtered total and the page count.
func (s *agreementServiceImpl) ListMy(ctx context.Context, viewer agreement.Viewer, query agreement.ListQuery) ([]agreement.AgreementResponse, int, int, error) {
	items, err := s.agreementRepo.ListByCreator(ctx, viewer.ID)
	if err != nil {
		return nil, 0, 0, err
	}

	filtered := agreement.Apply(items, query.Filter)
	page, totalPages := agreement.Paginate(filtered, query.Page, query.PageSize)

	return agreement.ToResponseList(page, viewer), len(filtered), totalPages, nil
}

// ListForReview implements AgreementService: the reviewer-facing listing.
// Department is the only criterion pushed to the database; non-admin viewers
// are anchored to their own department when the filter leaves it empty.
// Admins with no department filter fetch across departments. Drafts never
// appear here.
func (s *agreementServiceImpl) ListForReview(ctx context.Context, viewer agreement.Viewer, viewerDepartmentID *string, query agreement.ListQuery) ([]agreement.AgreementResponse, int, int, error) {
	filter := query.Filter

	if filter.DepartmentID == "" && viewer.Role != user.RoleAdmin {
		if viewerDepartmentID == nil {
			return nil, 0, 0, user.ErrDepartmentRequired
		}
		filter.DepartmentID = *viewerDepartmentID
	}

	var scope *string
	if filter.DepartmentID != "" {
		scope = &filter.DepartmentID
	}

	items, err := s.agreementRepo.ListByDepartment(ctx, scope)
	if err != nil {
		return nil, 0, 0, err
	}

	filtered := agreement.ApplyForReview(items, filter)
	page, totalPages := agreement.Paginate(filtered, query.Page, query.PageSize)

	return agreement.ToResponseList(page, viewer), len(filtered), totalPages, nil
}
