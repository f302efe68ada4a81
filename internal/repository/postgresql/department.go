package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrpms/pms-backend-go/internal/domain/department"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, description)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, name, description, created_at, updated_at
	`

	var result department.Department
	err := q.QueryRow(ctx, query, d.Name, d.Description).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return result, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var result department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return department.Department{}, department.ErrDepartmentNotFound
	}

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return result, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Description,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.Description, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM departments WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return department.ErrDepartmentInUse
	}
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

type unitRepositoryImpl struct {
	db *database.DB
}

func NewUnitRepository(db *database.DB) department.UnitRepository {
	return &unitRepositoryImpl{db: db}
}

// Create implements department.UnitRepository.
func (r *unitRepositoryImpl) Create(ctx context.Context, u department.Unit) (department.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO units (id, department_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, department_id, name, created_at, updated_at
	`

	var result department.Unit
	err := q.QueryRow(ctx, query, u.DepartmentID, u.Name).Scan(
		&result.ID,
		&result.DepartmentID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return department.Unit{}, department.ErrDepartmentNotFound
	}
	if err != nil {
		return department.Unit{}, fmt.Errorf("failed to create unit: %w", err)
	}

	return result, nil
}

// GetByID implements department.UnitRepository.
func (r *unitRepositoryImpl) GetByID(ctx context.Context, id string) (department.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, name, created_at, updated_at
		FROM units
		WHERE id = $1
	`

	var result department.Unit
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.DepartmentID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return department.Unit{}, department.ErrUnitNotFound
	}

	if err != nil {
		return department.Unit{}, fmt.Errorf("failed to get unit: %w", err)
	}

	return result, nil
}

// List implements department.UnitRepository. A nil departmentID lists every
// unit; otherwise the listing is scoped to one department.
func (r *unitRepositoryImpl) List(ctx context.Context, departmentID *string) ([]department.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, name, created_at, updated_at
		FROM units
		WHERE ($1::uuid IS NULL OR department_id = $1)
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get units: %w", err)
	}
	defer rows.Close()

	var units []department.Unit
	for rows.Next() {
		var u department.Unit
		err := rows.Scan(
			&u.ID,
			&u.DepartmentID,
			&u.Name,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return units, nil
}

// Update implements department.UnitRepository.
func (r *unitRepositoryImpl) Update(ctx context.Context, req department.UpdateUnitRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE units
		SET name = COALESCE($1, name),
		    department_id = COALESCE($2, department_id),
		    updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.DepartmentID, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrUnitNotFound
	}

	return nil
}

// Delete implements department.UnitRepository.
func (r *unitRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM units WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrUnitNotFound
	}

	return nil
}
