package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrpms/pms-backend-go/internal/domain/master/grade"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type gradeRepositoryImpl struct {
	db *database.DB
}

func NewGradeRepository(db *database.DB) grade.GradeRepository {
	return &gradeRepositoryImpl{db: db}
}

// Create implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Create(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO grades (id, name, description)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, name, description
	`

	var result grade.Grade
	err := q.QueryRow(ctx, query, g.Name, g.Description).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return grade.Grade{}, grade.ErrGradeExists
	}
	if err != nil {
		return grade.Grade{}, fmt.Errorf("failed to create grade: %w", err)
	}

	return result, nil
}

// GetByID implements grade.GradeRepository.
func (r *gradeRepositoryImpl) GetByID(ctx context.Context, id string) (grade.Grade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description
		FROM grades
		WHERE id = $1
	`

	var result grade.Grade
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return grade.Grade{}, grade.ErrGradeNotFound
	}

	if err != nil {
		return grade.Grade{}, fmt.Errorf("failed to get grade: %w", err)
	}

	return result, nil
}

// List implements grade.GradeRepository.
func (r *gradeRepositoryImpl) List(ctx context.Context) ([]grade.Grade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description
		FROM grades
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get grades: %w", err)
	}
	defer rows.Close()

	var grades []grade.Grade
	for rows.Next() {
		var g grade.Grade
		err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grades, nil
}

// Update implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Update(ctx context.Context, req grade.UpdateGradeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE grades
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.Description, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return grade.ErrGradeNotFound
	}

	return nil
}

// Delete implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM grades WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return grade.ErrGradeNotFound
	}

	return nil
}
