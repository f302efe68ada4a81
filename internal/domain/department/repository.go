package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, id string) error
}

type UnitRepository interface {
	Create(ctx context.Context, u Unit) (Unit, error)
	GetByID(ctx context.Context, id string) (Unit, error)
	List(ctx context.Context, departmentID *string) ([]Unit, error)
	Update(ctx context.Context, req UpdateUnitRequest) error
	Delete(ctx context.Context, id string) error
}
