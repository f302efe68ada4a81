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

type subCountyRepositoryImpl struct {
	db *database.DB
}

func NewSubCountyRepository(db *database.DB) location.SubCountyRepository {
	return &subCountyRepositoryImpl{db: db}
}

// Create implements location.SubCountyRepository.
func (r *subCountyRepositoryImpl) Create(ctx context.Context, s location.SubCounty) (location.SubCounty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subcounties (id, county_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, county_id, name
	`

	var result location.SubCounty
	err := q.QueryRow(ctx, query, s.CountyID, s.Name).Scan(
		&result.ID,
		&result.CountyID,
		&result.Name,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.SubCounty{}, location.ErrParentNotFound
	}
	if err != nil {
		return location.SubCounty{}, fmt.Errorf("failed to create subcounty: %w", err)
	}

	return result, nil
}

// GetByID implements location.SubCountyRepository.
func (r *subCountyRepositoryImpl) GetByID(ctx context.Context, id string) (location.SubCounty, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, county_id, name FROM subcounties WHERE id = $1`

	var result location.SubCounty
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.CountyID, &result.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return location.SubCounty{}, location.ErrSubCountyNotFound
	}

	if err != nil {
		return location.SubCounty{}, fmt.Errorf("failed to get subcounty: %w", err)
	}

	return result, nil
}

// List implements location.SubCountyRepository.
func (r *subCountyRepositoryImpl) List(ctx context.Context) ([]location.SubCounty, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, county_id, name FROM subcounties ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get subcounties: %w", err)
	}
	defer rows.Close()

	var subcounties []location.SubCounty
	for rows.Next() {
		var s location.SubCounty
		if err := rows.Scan(&s.ID, &s.CountyID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan subcounty: %w", err)
		}
		subcounties = append(subcounties, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return subcounties, nil
}

// Update implements location.SubCountyRepository.
func (r *subCountyRepositoryImpl) Update(ctx context.Context, id string, name *string, countyID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subcounties
		SET name = COALESCE($1, name),
		    county_id = COALESCE($2, county_id)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, name, countyID, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrParentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update subcounty: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrSubCountyNotFound
	}

	return nil
}

// Delete implements location.SubCountyRepository.
func (r *subCountyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM subcounties WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrHasChildren
	}
	if err != nil {
		return fmt.Errorf("failed to delete subcounty: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrSubCountyNotFound
	}

	return nil
}
