package department

import (
	"context"

	"github.com/hrpms/pms-backend-go/internal/domain/department"
)

type DepartmentService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	GetDepartment(ctx context.Context, id string) (department.Department, error)
	ListDepartments(ctx context.Context) ([]department.Department, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Unit operations
	CreateUnit(ctx context.Context, req department.CreateUnitRequest) (department.Unit, error)
	GetUnit(ctx context.Context, id string) (department.Unit, error)
	ListUnits(ctx context.Context, departmentID *string) ([]department.Unit, error)
	UpdateUnit(ctx context.Context, req department.UpdateUnitRequest) error
	DeleteUnit(ctx context.Context, id string) error
}

type departmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
	unitRepo       department.UnitRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, unitRepo department.UnitRepository) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		unitRepo:       unitRepo,
	}
}

func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	return s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *departmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *departmentServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		return []department.Department{}, nil
	}
	return departments, nil
}

func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.departmentRepo.Update(ctx, req)
}

func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

func (s *departmentServiceImpl) CreateUnit(ctx context.Context, req department.CreateUnitRequest) (department.Unit, error) {
	if err := req.Validate(); err != nil {
		return department.Unit{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return department.Unit{}, err
	}

	return s.unitRepo.Create(ctx, department.Unit{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
	})
}

func (s *departmentServiceImpl) GetUnit(ctx context.Context, id string) (department.Unit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

func (s *departmentServiceImpl) ListUnits(ctx context.Context, departmentID *string) ([]department.Unit, error) {
	units, err := s.unitRepo.List(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return []department.Unit{}, nil
	}
	return units, nil
}

func (s *departmentServiceImpl) UpdateUnit(ctx context.Context, req department.UpdateUnitRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.unitRepo.Update(ctx, req)
}

func (s *departmentServiceImpl) DeleteUnit(ctx context.Context, id string) error {
	return s.unitRepo.Delete(ctx, id)
}
