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

type districtRepositoryImpl struct {
	db *database.DB
}

func NewDistrictRepository(db *database.DB) location.DistrictRepository {
	return &districtRepositoryImpl{db: db}
}

// Create implements location.DistrictRepository.
func (r *districtRepositoryImpl) Create(ctx context.Context, d location.District) (location.District, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO districts (id, region_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, region_id, name
	`

	var result location.District
	err := q.QueryRow(ctx, query, d.RegionID, d.Name).Scan(
		&result.ID,
		&result.RegionID,
		&result.Name,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.District{}, location.ErrParentNotFound
	}
	if err != nil {
		return location.District{}, fmt.Errorf("failed to create district: %w", err)
	}

	return result, nil
}

// GetByID implements location.DistrictRepository.
func (r *districtRepositoryImpl) GetByID(ctx context.Context, id string) (location.District, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, region_id, name FROM districts WHERE id = $1`

	var result location.District
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.RegionID, &result.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return location.District{}, location.ErrDistrictNotFound
	}

	if err != nil {
		return location.District{}, fmt.Errorf("failed to get district: %w", err)
	}

	return result, nil
}

// List implements location.DistrictRepository.
func (r *districtRepositoryImpl) List(ctx context.Context) ([]location.District, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, region_id, name FROM districts ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get districts: %w", err)
	}
	defer rows.Close()

	var districts []location.District
	for rows.Next() {
		var d location.District
		if err := rows.Scan(&d.ID, &d.RegionID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return districts, nil
}

// Update implements location.DistrictRepository.
func (r *districtRepositoryImpl) Update(ctx context.Context, id string, name *string, regionID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE districts
		SET name = COALESCE($1, name),
		    region_id = COALESCE($2, region_id)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, name, regionID, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrParentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update district: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrDistrictNotFound
	}

	return nil
}

// Delete implements location.DistrictRepository.
func (r *districtRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM districts WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrHasChildren
	}
	if err != nil {
		return fmt.Errorf("failed to delete district: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrDistrictNotFound
	}

	return nil
}
