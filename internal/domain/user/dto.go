package user

import "github.com/hrpms/pms-backend-go/internal/pkg/validator"

type CreateUserRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Surname      string  `json:"surname"`
	LastName     string  `json:"last_name"`
	OtherName    *string `json:"other_name,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
	RoleID       string  `json:"role_id"`
	DepartmentID *string `json:"department_id,omitempty"`
	UnitID       *string `json:"unit_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}
	if !validator.IsValidPassword(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if validator.IsEmpty(r.Surname) {
		errs = append(errs, validator.ValidationError{
			Field:   "surname",
			Message: "surname is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID           string  `json:"-"`
	Email        *string `json:"email,omitempty"`
	Surname      *string `json:"surname,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	OtherName    *string `json:"other_name,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
	RoleID       *string `json:"role_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	UnitID       *string `json:"unit_id,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "user id is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be valid",
		})
	}
	if r.Surname != nil && validator.IsEmpty(*r.Surname) {
		errs = append(errs, validator.ValidationError{
			Field:   "surname",
			Message: "surname must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserResponse is the wire shape; the password hash never leaves the server.
type UserResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Surname        string  `json:"surname"`
	LastName       string  `json:"last_name"`
	OtherName      *string `json:"other_name,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	Role           string  `json:"role"`
	RoleID         *string `json:"role_id,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department,omitempty"`
	UnitID         *string `json:"unit_or_branch_id,omitempty"`
	UnitName       *string `json:"unit_or_branch,omitempty"`
	Locked         bool    `json:"locked"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Surname:        u.Surname,
		LastName:       u.LastName,
		OtherName:      u.OtherName,
		JobTitle:       u.JobTitle,
		Role:           string(u.Role),
		RoleID:         u.RoleID,
		DepartmentID:   u.DepartmentID,
		DepartmentName: u.DepartmentName,
		UnitID:         u.UnitID,
		UnitName:       u.UnitName,
		Locked:         u.Locked,
	}
}
