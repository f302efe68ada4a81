package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrUnitNotFound       = errors.New("unit not found")
	ErrDepartmentInUse    = errors.New("department has assigned users")
)
