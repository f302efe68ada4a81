package role

import "errors"

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleNameExists    = errors.New("role name already exists")
	ErrRoleInUse         = errors.New("role is assigned to users")
	ErrUnknownPermission = errors.New("unknown permission code")
)
