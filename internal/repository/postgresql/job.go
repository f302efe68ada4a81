package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrpms/pms-backend-go/internal/domain/master/job"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (id, title, grade_id)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, title, grade_id
	`

	var result job.Job
	err := q.QueryRow(ctx, query, j.Title, j.GradeID).Scan(
		&result.ID,
		&result.Title,
		&result.GradeID,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return job.Job{}, job.ErrJobExists
	}
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return result, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, grade_id
		FROM jobs
		WHERE id = $1
	`

	var result job.Job
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Title,
		&result.GradeID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrJobNotFound
	}

	if err != nil {
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	return result, nil
}

// List implements job.JobRepository.
func (r *jobRepositoryImpl) List(ctx context.Context) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, grade_id
		FROM jobs
		ORDER BY title ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		var j job.Job
		err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.GradeID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return jobs, nil
}

// Update implements job.JobRepository.
func (r *jobRepositoryImpl) Update(ctx context.Context, req job.UpdateJobRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET title = COALESCE($1, title),
		    grade_id = COALESCE($2, grade_id)
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.Title, req.GradeID, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM jobs WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}
