package response

import (
	"errors"
	"net/http"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
	"github.com/hrpms/pms-backend-go/internal/domain/auth"
	"github.com/hrpms/pms-backend-go/internal/domain/department"
	"github.com/hrpms/pms-backend-go/internal/domain/location"
	"github.com/hrpms/pms-backend-go/internal/domain/master/grade"
	"github.com/hrpms/pms-backend-go/internal/domain/master/job"
	"github.com/hrpms/pms-backend-go/internal/domain/role"
	"github.com/hrpms/pms-backend-go/internal/domain/user"
	"github.com/hrpms/pms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		BadRequest(w, "Reset token is invalid or expired", nil)
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrAccountLocked):
		Forbidden(w, "Account is locked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserLocked):
		Forbidden(w, "User account is locked")
	case errors.Is(err, user.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrReviewerRequired):
		Forbidden(w, "Reviewer role required")
	case errors.Is(err, user.ErrInvalidReviewer):
		BadRequest(w, "Assigned reviewer must hold a reviewer role", nil)
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete own account", nil)
	case errors.Is(err, user.ErrUnknownRole):
		BadRequest(w, "Unknown role", nil)
	case errors.Is(err, user.ErrDepartmentRequired):
		BadRequest(w, "A department assignment is required", nil)

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Role is still in use")

	// Agreement domain errors
	case errors.Is(err, agreement.ErrAgreementNotFound):
		NotFound(w, "Agreement not found")
	case errors.Is(err, agreement.ErrNotAgreementOwner):
		Forbidden(w, "Only the agreement owner may do this")
	case errors.Is(err, agreement.ErrNotAssignedReviewer):
		Forbidden(w, "Only the assigned reviewer may do this")
	case errors.Is(err, agreement.ErrAgreementAlreadyProcessed):
		Conflict(w, "Agreement already processed")
	case errors.Is(err, agreement.ErrAgreementNotEditable):
		Conflict(w, "Agreement is not editable in its current status")
	case errors.Is(err, agreement.ErrInvalidAction):
		BadRequest(w, "Invalid review action", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrUnitNotFound):
		NotFound(w, "Unit not found")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has assigned users")

	// Master data errors
	case errors.Is(err, grade.ErrGradeNotFound):
		NotFound(w, "Grade not found")
	case errors.Is(err, grade.ErrGradeExists):
		Conflict(w, "Grade name already exists")
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrJobExists):
		Conflict(w, "Job title already exists")

	// Location domain errors
	case errors.Is(err, location.ErrRegionNotFound):
		NotFound(w, "Region not found")
	case errors.Is(err, location.ErrDistrictNotFound):
		NotFound(w, "District not found")
	case errors.Is(err, location.ErrCountyNotFound):
		NotFound(w, "County not found")
	case errors.Is(err, location.ErrSubCountyNotFound):
		NotFound(w, "Subcounty not found")
	case errors.Is(err, location.ErrParishNotFound):
		NotFound(w, "Parish not found")
	case errors.Is(err, location.ErrVillageNotFound):
		NotFound(w, "Village not found")
	case errors.Is(err, location.ErrParentNotFound):
		BadRequest(w, "Parent location not found", nil)
	case errors.Is(err, location.ErrHasChildren):
		Conflict(w, "Location still has dependent children")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
