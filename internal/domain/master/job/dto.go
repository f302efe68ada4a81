package job

import "github.com/hrpms/pms-backend-go/internal/pkg/validator"

// Job is an administered job title, optionally tied to a grade.
type Job struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	GradeID *string `json:"grade_id,omitempty"`
}

type CreateJobRequest struct {
	Title   string  `json:"title"`
	GradeID *string `json:"grade_id,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJobRequest struct {
	ID      string  `json:"-"`
	Title   *string `json:"title,omitempty"`
	GradeID *string `json:"grade_id,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "job id is required",
		})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
