package user

import (
	"strings"
	"time"
)

// RoleName is the workflow role attached to a user account. Roles are stored
// as rows (see the role domain) but the four built-in names gate the
// agreement workflow.
type RoleName string

const (
	RoleAdmin      RoleName = "admin"
	RoleHOD        RoleName = "hod"
	RoleSupervisor RoleName = "supervisor"
	RoleEmployee   RoleName = "employee"
)

// User carries both the account and the employee master data the agreement
// workflow references (names, job title, unit, department).
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	RoleID       *string
	Role         RoleName

	Surname   string
	LastName  string
	OtherName *string
	JobTitle  *string

	DepartmentID   *string
	DepartmentName *string
	UnitID         *string
	UnitName       *string

	Locked bool

	OAuthProvider   *string
	OAuthProviderID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins surname, last name and other name, skipping blanks.
func (u *User) FullName() string {
	parts := []string{u.Surname, u.LastName}
	if u.OtherName != nil && *u.OtherName != "" {
		parts = append(parts, *u.OtherName)
	}
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsReviewer checks if the user acts as an approver in the agreement pipeline.
func (u *User) IsReviewer() bool {
	return u.Role == RoleSupervisor || u.Role == RoleHOD || u.Role == RoleAdmin
}
