package agreement

import (
	"strings"
	"time"
)

type Period string

const (
	PeriodAnnual    Period = "annual"
	PeriodProbation Period = "probation"
)

// Status is the agreement's position in the approval pipeline:
// draft → pending_supervisor → pending_hod → approved, with a terminal
// rejected branch from either review stage.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusSubmitted         Status = "submitted"
	StatusPendingSupervisor Status = "pending_supervisor"
	StatusPendingHOD        Status = "pending_hod"
	// StatusApprovedSupervisor is recognized for display and filtering but no
	// transition produces it; supervisor approval moves straight to
	// pending_hod.
	StatusApprovedSupervisor   Status = "approved_supervisor"
	StatusApproved             Status = "approved"
	StatusRejectedBySupervisor Status = "rejected_by_supervisor"
	StatusRejectedByHOD        Status = "rejected_by_hod"
	StatusRejected             Status = "rejected"
)

// Party is the denormalized view of a workflow participant embedded in
// agreement responses.
type Party struct {
	ID             string  `json:"id"`
	Surname        string  `json:"surname"`
	LastName       string  `json:"last_name"`
	OtherName      *string `json:"other_name,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	UnitID         *string `json:"unit_or_branch_id,omitempty"`
	UnitName       *string `json:"unit_or_branch,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department,omitempty"`
}

func (p Party) FullName() string {
	parts := []string{p.Surname, p.LastName}
	if p.OtherName != nil && *p.OtherName != "" {
		parts = append(parts, *p.OtherName)
	}
	var nonEmpty []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// Measure is a KPI attached to an agreement. The collection is ordered and
// frozen once the agreement leaves draft.
type Measure struct {
	ID               string   `json:"id"`
	AgreementID      string   `json:"agreement_id"`
	Name             string   `json:"name"`
	SelfRating       *float64 `json:"self_rating,omitempty"`
	ActualValue      *string  `json:"actual_value,omitempty"`
	EmployeeComments *string  `json:"employee_comments,omitempty"`
	SortOrder        int      `json:"sort_order"`
}

// Agreement links an employee to their supervisor and HOD for a review
// period and carries a status through the approval pipeline.
type Agreement struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Period Period `json:"period"`
	Status Status `json:"status"`

	CreatorID    string `json:"creator_id"`
	SupervisorID string `json:"supervisor_id"`
	HODID        string `json:"hod_id"`

	DepartmentID   string  `json:"department_id"`
	DepartmentName *string `json:"department,omitempty"`

	Creator    Party `json:"creator"`
	Supervisor Party `json:"supervisor"`
	HOD        Party `json:"hod"`

	SupervisorComment *string `json:"supervisor_comment,omitempty"`
	HODComment        *string `json:"hod_comment,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Measures []Measure `json:"performance_measures,omitempty"`
}
