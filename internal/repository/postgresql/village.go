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

type villageRepositoryImpl struct {
	db *database.DB
}

func NewVillageRepository(db *database.DB) location.VillageRepository {
	return &villageRepositoryImpl{db: db}
}

// Create implements location.VillageRepository.
func (r *villageRepositoryImpl) Create(ctx context.Context, v location.Village) (location.Village, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO villages (id, parish_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, parish_id, name
	`

	var result location.Village
	err := q.QueryRow(ctx, query, v.ParishID, v.Name).Scan(
		&result.ID,
		&result.ParishID,
		&result.Name,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.Village{}, location.ErrParentNotFound
	}
	if err != nil {
		return location.Village{}, fmt.Errorf("failed to create village: %w", err)
	}

	return result, nil
}

// GetByID implements location.VillageRepository.
func (r *villageRepositoryImpl) GetByID(ctx context.Context, id string) (location.Village, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, parish_id, name FROM villages WHERE id = $1`

	var result location.Village
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.ParishID, &result.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return location.Village{}, location.ErrVillageNotFound
	}

	if err != nil {
		return location.Village{}, fmt.Errorf("failed to get village: %w", err)
	}

	return result, nil
}

// List implements location.VillageRepository.
func (r *villageRepositoryImpl) List(ctx context.Context) ([]location.Village, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, parish_id, name FROM villages ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get villages: %w", err)
	}
	defer rows.Close()

	var villages []location.Village
	for rows.Next() {
		var v location.Village
		if err := rows.Scan(&v.ID, &v.ParishID, &v.Name); err != nil {
			return nil, fmt.Errorf("failed to scan village: %w", err)
		}
		villages = append(villages, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return villages, nil
}

// Update implements location.VillageRepository.
func (r *villageRepositoryImpl) Update(ctx context.Context, id string, name *string, parishID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE villages
		SET name = COALESCE($1, name),
		    parish_id = COALESCE($2, parish_id)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, name, parishID, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return location.ErrParentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update village: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrVillageNotFound
	}

	return nil
}

// Delete implements location.VillageRepository.
func (r *villageRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM villages WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete village: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrVillageNotFound
	}

	return nil
}
