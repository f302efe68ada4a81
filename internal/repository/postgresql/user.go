package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrpms/pms-backend-go/internal/domain/user"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userSelectColumns = `
	u.id, u.email, u.password_hash, u.role_id, COALESCE(r.name, 'employee'),
	u.surname, u.last_name, u.other_name, u.job_title,
	u.department_id, d.name, u.unit_id, un.name,
	u.locked, u.oauth_provider, u.oauth_provider_id,
	u.created_at, u.updated_at
`

const userSelectJoins = `
	FROM users u
	LEFT JOIN roles r ON r.id = u.role_id
	LEFT JOIN departments d ON d.id = u.department_id
	LEFT JOIN units un ON un.id = u.unit_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.RoleID,
		&u.Role,
		&u.Surname,
		&u.LastName,
		&u.OtherName,
		&u.JobTitle,
		&u.DepartmentID,
		&u.DepartmentName,
		&u.UnitID,
		&u.UnitName,
		&u.Locked,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, email, password_hash, role_id, surname, last_name, other_name,
			job_title, department_id, unit_id, oauth_provider, oauth_provider_id
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		newUser.Email,
		newUser.PasswordHash,
		newUser.RoleID,
		newUser.Surname,
		newUser.LastName,
		newUser.OtherName,
		newUser.JobTitle,
		newUser.DepartmentID,
		newUser.UnitID,
		newUser.OAuthProvider,
		newUser.OAuthProviderID,
	).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return user.User{}, user.ErrEmailExists
	}
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userSelectColumns + userSelectJoins + ` WHERE u.id = $1`

	result, err := scanUser(q.QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}

	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return result, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userSelectColumns + userSelectJoins + ` WHERE LOWER(u.email) = LOWER($1)`

	result, err := scanUser(q.QueryRow(ctx, query, email))

	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}

	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return result, nil
}

// List implements user.UserRepository. Search matches name and email; the
// remaining criteria are exact. The total count ignores pagination.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `
		SELECT ` + userSelectColumns + `, COUNT(*) OVER() AS total
		` + userSelectJoins + `
		WHERE ($1::text IS NULL OR
		       u.surname ILIKE '%' || $1 || '%' OR
		       u.last_name ILIKE '%' || $1 || '%' OR
		       u.email ILIKE '%' || $1 || '%')
		  AND ($2::uuid IS NULL OR u.role_id = $2)
		  AND ($3::uuid IS NULL OR u.department_id = $3)
		  AND ($4::uuid IS NULL OR u.unit_id = $4)
		ORDER BY u.surname ASC, u.last_name ASC
		LIMIT $5 OFFSET $6
	`

	rows, err := q.Query(ctx, query,
		filter.Search,
		filter.RoleID,
		filter.DepartmentID,
		filter.UnitID,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	var total int64
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.RoleID,
			&u.Role,
			&u.Surname,
			&u.LastName,
			&u.OtherName,
			&u.JobTitle,
			&u.DepartmentID,
			&u.DepartmentName,
			&u.UnitID,
			&u.UnitName,
			&u.Locked,
			&u.OAuthProvider,
			&u.OAuthProviderID,
			&u.CreatedAt,
			&u.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, total, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = COALESCE($1, email),
		    surname = COALESCE($2, surname),
		    last_name = COALESCE($3, last_name),
		    other_name = COALESCE($4, other_name),
		    job_title = COALESCE($5, job_title),
		    role_id = COALESCE($6, role_id),
		    department_id = COALESCE($7, department_id),
		    unit_id = COALESCE($8, unit_id),
		    updated_at = NOW()
		WHERE id = $9
	`

	commandTag, err := q.Exec(ctx, query,
		req.Email,
		req.Surname,
		req.LastName,
		req.OtherName,
		req.JobTitle,
		req.RoleID,
		req.DepartmentID,
		req.UnitID,
		req.ID,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return user.ErrEmailExists
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, email string, googleID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider = 'google', oauth_provider_id = $1, updated_at = NOW()
		WHERE LOWER(email) = LOWER($2)
	`

	commandTag, err := q.Exec(ctx, query, googleID, email)
	if err != nil {
		return fmt.Errorf("failed to link google account: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SetLocked implements user.UserRepository.
func (r *userRepositoryImpl) SetLocked(ctx context.Context, id string, locked bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET locked = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, locked, id)
	if err != nil {
		return fmt.Errorf("failed to update lock state: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM users WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
