package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserLocked         = errors.New("user account is locked")
	ErrAdminRequired      = errors.New("admin privilege required")
	ErrReviewerRequired   = errors.New("reviewer role required")
	ErrInvalidReviewer    = errors.New("assigned reviewer must hold a reviewer role")
	ErrCannotDeleteSelf   = errors.New("cannot delete own account")
	ErrUnknownRole        = errors.New("unknown role")
	ErrDepartmentRequired = errors.New("user has no department assigned")
)
