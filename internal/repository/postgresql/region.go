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

type regionRepositoryImpl struct {
	db *database.DB
}

func NewRegionRepository(db *database.DB) location.RegionRepository {
	return &regionRepositoryImpl{db: db}
}

// Create implements location.RegionRepository.
func (r *regionRepositoryImpl) Create(ctx context.Context, reg location.Region) (location.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO regions (id, name)
		VALUES (uuidv7(), $1)
		RETURNING id, name
	`

	var result location.Region
	err := q.QueryRow(ctx, query, reg.Name).Scan(&result.ID, &result.Name)
	if err != nil {
		return location.Region{}, fmt.Errorf("failed to create region: %w", err)
	}

	return result, nil
}

// GetByID implements location.RegionRepository.
func (r *regionRepositoryImpl) GetByID(ctx context.Context, id string) (location.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name FROM regions WHERE id = $1`

	var result location.Region
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return location.Region{}, location.ErrRegionNotFound
	}

	if err != nil {
		return location.Region{}, fmt.Errorf("failed to get region: %w", err)
	}

	return result, nil
}

// List implements location.RegionRepository.
func (r *regionRepositoryImpl) List(ctx context.Context) ([]location.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name FROM regions ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get regions: %w", err)
	}
	defer rows.Close()

	var regions []location.Region
	for rows.Next() {
		var reg location.Region
		if err := rows.Scan(&reg.ID, &reg.Name); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return regions, nil
}

// Update implements location.RegionRepository.
func (r *regionRepositoryImpl) Update(ctx context.Context, id, name string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE regions SET name = $1 WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("failed to update region: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrRegionNotFound
	}

	return nil
}

// Delete implements location.RegionRepository.
func (r *regionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM regions WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrHasChildren
	}
	if err != nil {
		return fmt.Errorf("failed to delete region: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrRegionNotFound
	}

	return nil
}
