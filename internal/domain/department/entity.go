package department

import "time"

// Department is the organizational scope agreements are reviewed under.
type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Unit is a unit/branch inside a department. Agreements filter on the
// creator's assigned unit.
type Unit struct {
	ID           string
	DepartmentID string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
