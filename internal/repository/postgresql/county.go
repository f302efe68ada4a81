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

type countyRepositoryImpl struct {
	db *database.DB
}

func NewCountyRepository(db *database.DB) location.CountyRepository {
	return &countyRepositoryImpl{db: db}
}

// Create implements location.CountyRepository.
func (r *countyRepositoryImpl) Create(ctx context.Context, c location.County) (location.County, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO counties (id, district_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, district_id, name
	`

	var result location.County
	err := q.QueryRow(ctx, query, c.DistrictID, c.Name).Scan(
		&result.ID,
		&result.DistrictID,
		&result.Name,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.County{}, location.ErrParentNotFound
	}
	if err != nil {
		return location.County{}, fmt.Errorf("failed to create county: %w", err)
	}

	return result, nil
}

// GetByID implements location.CountyRepository.
func (r *countyRepositoryImpl) GetByID(ctx context.Context, id string) (location.County, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, district_id, name FROM counties WHERE id = $1`

	var result location.County
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.DistrictID, &result.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return location.County{}, location.ErrCountyNotFound
	}

	if err != nil {
		return location.County{}, fmt.Errorf("failed to get county: %w", err)
	}

	return result, nil
}

// List implements location.CountyRepository.
func (r *countyRepositoryImpl) List(ctx context.Context) ([]location.County, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, district_id, name FROM counties ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get counties: %w", err)
	}
	defer rows.Close()

	var counties []location.County
	for rows.Next() {
		var c location.County
		if err := rows.Scan(&c.ID, &c.DistrictID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan county: %w", err)
		}
		counties = append(counties, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counties, nil
}

// Update implements location.CountyRepository.
func (r *countyRepositoryImpl) Update(ctx context.Context, id string, name *string, districtID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE counties
		SET name = COALESCE($1, name),
		    district_id = COALESCE($2, district_id)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, name, districtID, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrParentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update county: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrCountyNotFound
	}

	return nil
}

// Delete implements location.CountyRepository.
func (r *countyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM counties WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrHasChildren
	}
	if err != nil {
		return fmt.Errorf("failed to delete county: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrCountyNotFound
	}

	return nil
}
