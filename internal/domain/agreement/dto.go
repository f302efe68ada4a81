package agreement

import "github.com/hrpms/pms-backend-go/internal/pkg/validator"

type MeasureInput struct {
	Name             string   `json:"name"`
	SelfRating       *float64 `json:"self_rating,omitempty"`
	ActualValue      *string  `json:"actual_value,omitempty"`
	EmployeeComments *string  `json:"employee_comments,omitempty"`
}

type CreateAgreementRequest struct {
	Title        string         `json:"name"`
	Period       string         `json:"period"`
	SupervisorID string         `json:"supervisor_id"`
	HODID        string         `json:"hod_id"`
	Measures     []MeasureInput `json:"performance_measures,omitempty"`
}

func (r *CreateAgreementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if !validator.IsInSlice(r.Period, []string{string(PeriodAnnual), string(PeriodProbation)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be annual or probation",
		})
	}
	if validator.IsEmpty(r.SupervisorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_id",
			Message: "supervisor_id is required",
		})
	}
	if validator.IsEmpty(r.HODID) {
		errs = append(errs, validator.ValidationError{
			Field:   "hod_id",
			Message: "hod_id is required",
		})
	}
	for _, m := range r.Measures {
		if validator.IsEmpty(m.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "performance_measures",
				Message: "every measure requires a name",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAgreementRequest struct {
	ID           string          `json:"-"`
	Title        *string         `json:"name,omitempty"`
	Period       *string         `json:"period,omitempty"`
	SupervisorID *string         `json:"supervisor_id,omitempty"`
	HODID        *string         `json:"hod_id,omitempty"`
	Measures     *[]MeasureInput `json:"performance_measures,omitempty"`
}

func (r *UpdateAgreementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "agreement id is required",
		})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Period != nil && !validator.IsInSlice(*r.Period, []string{string(PeriodAnnual), string(PeriodProbation)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be annual or probation",
		})
	}
	if r.Measures != nil {
		for _, m := range *r.Measures {
			if validator.IsEmpty(m.Name) {
				errs = append(errs, validator.ValidationError{
					Field:   "performance_measures",
					Message: "every measure requires a name",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecisionRequest carries a reviewer's approve-or-reject decision.
type DecisionRequest struct {
	Action  string `json:"action"`
	Comment string `json:"comment"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{string(ActionApprove), string(ActionReject)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be approve or reject",
		})
	}
	if r.Action == string(ActionReject) && validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListQuery is the parsed query string of the listing endpoints. Department
// is forwarded to the repository; the rest feeds the in-memory projection.
type ListQuery struct {
	Filter   Filter
	Page     int
	PageSize int
}

// AgreementResponse decorates an agreement with its presentation status and
// the viewer's resolved actions.
type AgreementResponse struct {
	Agreement
	StatusInfo StatusInfo `json:"status_info"`
	Actions    ActionSet  `json:"actions"`
}

func ToResponse(a Agreement, v Viewer) AgreementResponse {
	return AgreementResponse{
		Agreement:  a,
		StatusInfo: ResolveStatus(a.Status),
		Actions:    ResolveActions(a, v),
	}
}

func ToResponseList(items []Agreement, v Viewer) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ToResponse(a, v))
	}
	return out
}
