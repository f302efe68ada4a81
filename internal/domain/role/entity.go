package role

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Role is a named permission set. The four built-in roles (admin, hod,
// supervisor, employee) are seeded; additional roles can be created by admins.
type Role struct {
	ID          string
	Name        string
	Description *string
	Permissions PermissionSet
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PermissionSet is stored as a JSONB array on the roles table.
type PermissionSet []string

// Value implements driver.Valuer for database storage.
func (p PermissionSet) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval.
func (p *PermissionSet) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PermissionSet: invalid type")
	}

	return json.Unmarshal(bytes, p)
}

// Has reports whether the set grants the permission.
func (p PermissionSet) Has(permission string) bool {
	for _, item := range p {
		if item == permission {
			return true
		}
	}
	return false
}

// Permission catalog returned by GET /permissions.
const (
	PermissionUserManage       = "user.manage"
	PermissionUserView         = "user.view"
	PermissionRoleManage       = "role.manage"
	PermissionReferenceManage  = "reference.manage"
	PermissionAgreementCreate  = "agreement.create"
	PermissionAgreementReview  = "agreement.review"
	PermissionAgreementViewAll = "agreement.view_all"
	PermissionReportView       = "report.view"
)

// AllPermissions lists every recognized permission code.
var AllPermissions = []string{
	PermissionUserManage,
	PermissionUserView,
	PermissionRoleManage,
	PermissionReferenceManage,
	PermissionAgreementCreate,
	PermissionAgreementReview,
	PermissionAgreementViewAll,
	PermissionReportView,
}
