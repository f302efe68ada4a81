package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrpms/pms-backend-go/internal/domain/role"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (id, name, description, permissions)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, name, description, permissions, created_at, updated_at
	`

	var result role.Role
	err := q.QueryRow(ctx, query, newRole.Name, newRole.Description, newRole.Permissions).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.Permissions,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return role.Role{}, role.ErrRoleNameExists
	}
	if err != nil {
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return result, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles
		WHERE id = $1
	`

	var result role.Role
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.Permissions,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return role.Role{}, role.ErrRoleNotFound
	}

	if err != nil {
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}

	return result, nil
}

// GetByName implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByName(ctx context.Context, name string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles
		WHERE name = $1
	`

	var result role.Role
	err := q.QueryRow(ctx, query, name).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.Permissions,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return role.Role{}, role.ErrRoleNotFound
	}

	if err != nil {
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}

	return result, nil
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var item role.Role
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Permissions,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, req role.UpdateRoleRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    permissions = COALESCE($3, permissions),
		    updated_at = NOW()
		WHERE id = $4
	`

	var permissions interface{}
	if req.Permissions != nil {
		permissions = role.PermissionSet(*req.Permissions)
	}

	commandTag, err := q.Exec(ctx, query, req.Name, req.Description, permissions, req.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return role.ErrRoleNameExists
	}
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM roles WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return role.ErrRoleInUse
	}
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}

// CountUsers implements role.RoleRepository.
func (r *roleRepositoryImpl) CountUsers(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM users WHERE role_id = $1`

	var count int64
	err := q.QueryRow(ctx, query, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count role users: %w", err)
	}

	return count, nil
}
