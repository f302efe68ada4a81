package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrpms/pms-backend-go/internal/domain/location"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type parishRepositoryImpl struct {
	db *database.DB
}

func NewParishRepository(db *database.DB) location.ParishRepository {
	return &parishRepositoryImpl{db: db}
}

// Create implements location.ParishRepository.
func (r *parishRepositoryImpl) Create(ctx context.Context, p location.Parish) (location.Parish, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO parishes (id, subcounty_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, subcounty_id, name
	`

	var result location.Parish
	err := q.QueryRow(ctx, query, p.SubCountyID, p.Name).Scan(
		&result.ID,
		&result.SubCountyID,
		&result.Name,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.Parish{}, location.ErrParentNotFound
	}
	if err != nil {
		return location.Parish{}, fmt.Errorf("failed to create parish: %w", err)
	}

	return result, nil
}

// GetByID implements location.ParishRepository.
func (r *parishRepositoryImpl) GetByID(ctx context.Context, id string) (location.Parish, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, subcounty_id, name FROM parishes WHERE id = $1`

	var result location.Parish
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.SubCountyID, &result.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return location.Parish{}, location.ErrParishNotFound
	}

	if err != nil {
		return location.Parish{}, fmt.Errorf("failed to get parish: %w", err)
	}

	return result, nil
}

// List implements location.ParishRepository.
func (r *parishRepositoryImpl) List(ctx context.Context) ([]location.Parish, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, subcounty_id, name FROM parishes ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get parishes: %w", err)
	}
	defer rows.Close()

	var parishes []location.Parish
	for rows.Next() {
		var p location.Parish
		if err := rows.Scan(&p.ID, &p.SubCountyID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan parish: %w", err)
		}
		parishes = append(parishes, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return parishes, nil
}

// Update implements location.ParishRepository.
func (r *parishRepositoryImpl) Update(ctx context.Context, id string, name *string, subCountyID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE parishes
		SET name = COALESCE($1, name),
		    subcounty_id = COALESCE($2, subcounty_id)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, name, subCountyID, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrParentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update parish: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrParishNotFound
	}

	return nil
}

// Delete implements location.ParishRepository.
func (r *parishRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM parishes WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrHasChildren
	}
	if err != nil {
		return fmt.Errorf("failed to delete parish: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrParishNotFound
	}

	return nil
}
