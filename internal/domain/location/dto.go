package location

import "github.com/hrpms/pms-backend-go/internal/pkg/validator"

// The levels share one request shape: a name plus the parent id. Regions
// have no parent, districts take an optional region, every other level
// requires its parent.

type CreateLocationRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

func (r *CreateLocationRequest) validate(parentField string, parentRequired bool) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if parentRequired && validator.IsEmpty(r.ParentID) {
		errs = append(errs, validator.ValidationError{
			Field:   parentField,
			Message: parentField + " is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreateLocationRequest) ValidateRegion() error    { return r.validate("", false) }
func (r *CreateLocationRequest) ValidateDistrict() error  { return r.validate("", false) }
func (r *CreateLocationRequest) ValidateCounty() error    { return r.validate("district_id", true) }
func (r *CreateLocationRequest) ValidateSubCounty() error { return r.validate("county_id", true) }
func (r *CreateLocationRequest) ValidateParish() error    { return r.validate("subcounty_id", true) }
func (r *CreateLocationRequest) ValidateVillage() error   { return r.validate("parish_id", true) }

type UpdateLocationRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`
}

func (r *UpdateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
