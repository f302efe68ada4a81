package role

import "github.com/hrpms/pms-backend-go/internal/pkg/validator"

type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	for _, p := range r.Permissions {
		if !validator.IsInSlice(p, AllPermissions) {
			errs = append(errs, validator.ValidationError{
				Field:   "permissions",
				Message: "unknown permission: " + p,
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RoleResponse is the wire shape of a role.
type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

func ToResponse(r Role) RoleResponse {
	permissions := []string(r.Permissions)
	if permissions == nil {
		permissions = []string{}
	}
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: permissions,
	}
}

type UpdateRoleRequest struct {
	ID          string    `json:"-"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "role id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Permissions != nil {
		for _, p := range *r.Permissions {
			if !validator.IsInSlice(p, AllPermissions) {
				errs = append(errs, validator.ValidationError{
					Field:   "permissions",
					Message: "unknown permission: " + p,
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
