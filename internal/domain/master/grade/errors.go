package grade

import "errors"

var (
	ErrGradeNotFound = errors.New("grade not found")
	ErrGradeExists   = errors.New("grade name already exists")
)
