package agreement

import (
	"context"
	"time"
)

// StatusUpdate is a guarded status write: the update only applies while the
// row still holds Expect, so concurrent decisions surface as
// ErrAgreementAlreadyProcessed instead of overwriting each other.
type StatusUpdate struct {
	ID                string
	Expect            Status
	Status            Status
	SubmittedAt       *time.Time
	SupervisorComment *string
	HODComment        *string
}

type AgreementRepository interface {
	Create(ctx context.Context, a Agreement) (Agreement, error)
	GetByID(ctx context.Context, id string) (Agreement, error)
	// ListByCreator returns the creator's own agreements, drafts included.
	ListByCreator(ctx context.Context, creatorID string) ([]Agreement, error)
	// ListByDepartment is the reviewer fetch. departmentID is the only
	// SQL-level filter; nil fetches across departments (admin view).
	ListByDepartment(ctx context.Context, departmentID *string) ([]Agreement, error)
	Update(ctx context.Context, req UpdateAgreementRequest) error
	UpdateStatus(ctx context.Context, upd StatusUpdate) error
	ReplaceMeasures(ctx context.Context, agreementID string, measures []MeasureInput) error
	Delete(ctx context.Context, id string) error
}
