package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type agreementRepositoryImpl struct {
	db *database.DB
}

func NewAgreementRepository(db *database.DB) agreement.AgreementRepository {
	return &agreementRepositoryImpl{db: db}
}

// Each workflow party is denormalized into the row so listings render names,
// units and departments without further lookups.
const agreementSelect = `
	SELECT
		a.id, a.title, a.period, a.status,
		a.creator_id, a.supervisor_id, a.hod_id,
		a.department_id, d.name,
		a.supervisor_comment, a.hod_comment,
		a.submitted_at, a.created_at, a.updated_at,
		c.surname, c.last_name, c.other_name, c.job_title,
		c.unit_id, cu.name, c.department_id, cd.name,
		s.surname, s.last_name, s.other_name, s.job_title,
		s.unit_id, su.name, s.department_id, sd.name,
		h.surname, h.last_name, h.other_name, h.job_title,
		h.unit_id, hu.name, h.department_id, hd.name
	FROM agreements a
	LEFT JOIN departments d ON d.id = a.department_id
	JOIN users c ON c.id = a.creator_id
	LEFT JOIN units cu ON cu.id = c.unit_id
	LEFT JOIN departments cd ON cd.id = c.department_id
	JOIN users s ON s.id = a.supervisor_id
	LEFT JOIN units su ON su.id = s.unit_id
	LEFT JOIN departments sd ON sd.id = s.department_id
	JOIN users h ON h.id = a.hod_id
	LEFT JOIN units hu ON hu.id = h.unit_id
	LEFT JOIN departments hd ON hd.id = h.department_id
`

func scanAgreement(row pgx.Row) (agreement.Agreement, error) {
	var a agreement.Agreement
	err := row.Scan(
		&a.ID, &a.Title, &a.Period, &a.Status,
		&a.CreatorID, &a.SupervisorID, &a.HODID,
		&a.DepartmentID, &a.DepartmentName,
		&a.SupervisorComment, &a.HODComment,
		&a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt,
		&a.Creator.Surname, &a.Creator.LastName, &a.Creator.OtherName, &a.Creator.JobTitle,
		&a.Creator.UnitID, &a.Creator.UnitName, &a.Creator.DepartmentID, &a.Creator.DepartmentName,
		&a.Supervisor.Surname, &a.Supervisor.LastName, &a.Supervisor.OtherName, &a.Supervisor.JobTitle,
		&a.Supervisor.UnitID, &a.Supervisor.UnitName, &a.Supervisor.DepartmentID, &a.Supervisor.DepartmentName,
		&a.HOD.Surname, &a.HOD.LastName, &a.HOD.OtherName, &a.HOD.JobTitle,
		&a.HOD.UnitID, &a.HOD.UnitName, &a.HOD.DepartmentID, &a.HOD.DepartmentName,
	)
	if err != nil {
		return agreement.Agreement{}, err
	}
	a.Creator.ID = a.CreatorID
	a.Supervisor.ID = a.SupervisorID
	a.HOD.ID = a.HODID
	return a, nil
}

// Create implements agreement.AgreementRepository.
func (r *agreementRepositoryImpl) Create(ctx context.Context, a agreement.Agreement) (agreement.Agreement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agreements (
			id, title, period, status, creator_id, supervisor_id, hod_id, department_id
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		a.Title,
		a.Period,
		a.Status,
		a.CreatorID,
		a.SupervisorID,
		a.HODID,
		a.DepartmentID,
	).Scan(&id)
	if err != nil {
		return agreement.Agreement{}, fmt.Errorf("failed to create agreement: %w", err)
	}

	for i, m := range a.Measures {
		if err := r.insertMeasure(ctx, id, agreement.MeasureInput{
			Name:             m.Name,
			SelfRating:       m.SelfRating,
			ActualValue:      m.ActualValue,
			EmployeeComments: m.EmployeeComments,
		}, i); err != nil {
			return agreement.Agreement{}, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *agreementRepositoryImpl) insertMeasure(ctx context.Context, agreementID string, m agreement.MeasureInput, sortOrder int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agreement_measures (
			id, agreement_id, name, self_rating, actual_value, employee_comments, sort_order
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, agreementID, m.Name, m.SelfRating, m.ActualValue, m.EmployeeComments, sortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert measure: %w", err)
	}
	return nil
}

func (r *agreementRepositoryImpl) loadMeasures(ctx context.Context, agreementID string) ([]agreement.Measure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, agreement_id, name, self_rating, actual_value, employee_comments, sort_order
		FROM agreement_measures
		WHERE agreement_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := q.Query(ctx, query, agreementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get measures: %w", err)
	}
	defer rows.Close()

	var measures []agreement.Measure
	for rows.Next() {
		var m agreement.Measure
		err := rows.Scan(
			&m.ID,
			&m.AgreementID,
			&m.Name,
			&m.SelfRating,
			&m.ActualValue,
			&m.EmployeeComments,
			&m.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan measure: %w", err)
		}
		measures = append(measures, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return measures, nil
}

// GetByID implements agreement.AgreementRepository.
func (r *agreementRepositoryImpl) GetByID(ctx context.Context, id string) (agreement.Agreement, error) {
	q := GetQuerier(ctx, r.db)

	query := agreementSelect + ` WHERE a.id = $1`

	result, err := scanAgreement(q.QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return agreement.Agreement{}, agreement.ErrAgreementNotFound
	}

	if err != nil {
		return agreement.Agreement{}, fmt.Errorf("failed to get agreement: %w", err)
	}

	result.Measures, err = r.loadMeasures(ctx, id)
	if err != nil {
		return agreement.Agreement{}, err
	}

	return result, nil
}

func (r *agreementRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]agreement.Agreement, error) {
	q := GetQuerier(ctx, r.db)

	query := agreementSelect + where + ` ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get agreements: %w", err)
	}
	defer rows.Close()

	var agreements []agreement.Agreement
	for rows.Next() {
		a, err := scanAgreement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agreement: %w", err)
		}
		agreements = append(agreements, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return agreements, nil
}

// ListByCreator implements agreement.AgreementRepository. Drafts are
// included; this feeds the owner's own listing.
func (r *agreementRepositoryImpl) ListByCreator(ctx context.Context, creatorID string) ([]agreement.Agreement, error) {
	return r.list(ctx, ` WHERE a.creator_id = $1`, creatorID)
}

// ListByDepartment implements agreement.AgreementRepository. Department is
// the only criterion pushed down to SQL; a nil departmentID fetches across
// departments for the admin view. Finer filtering happens in memory.
func (r *agreementRepositoryImpl) ListByDepartment(ctx context.Context, departmentID *string) ([]agreement.Agreement, error) {
	return r.list(ctx, ` WHERE ($1::uuid IS NULL OR a.department_id = $1)`, departmentID)
}

// Update implements agreement.AgreementRepository. Measures are replaced
// separately via ReplaceMeasures.
func (r *agreementRepositoryImpl) Update(ctx context.Context, req agreement.UpdateAgreementRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE agreements
		SET title = COALESCE($1, title),
		    period = COALESCE($2, period),
		    supervisor_id = COALESCE($3, supervisor_id),
		    hod_id = COALESCE($4, hod_id),
		    updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, req.Title, req.Period, req.SupervisorID, req.HODID, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update agreement: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return agreement.ErrAgreementNotFound
	}

	return nil
}

// UpdateStatus implements agreement.AgreementRepository. The write is guarded
// on the expected current status: if the row moved on since it was read, no
// row matches and the caller gets ErrAgreementAlreadyProcessed instead of a
// silent overwrite.
func (r *agreementRepositoryImpl) UpdateStatus(ctx context.Context, upd agreement.StatusUpdate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE agreements
		SET status = $1,
		    submitted_at = COALESCE($2, submitted_at),
		    supervisor_comment = COALESCE($3, supervisor_comment),
		    hod_comment = COALESCE($4, hod_comment),
		    updated_at = NOW()
		WHERE id = $5 AND status = $6
	`

	commandTag, err := q.Exec(ctx, query,
		upd.Status,
		upd.SubmittedAt,
		upd.SupervisorComment,
		upd.HODComment,
		upd.ID,
		upd.Expect,
	)
	if err != nil {
		return fmt.Errorf("failed to update agreement status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM agreements WHERE id = $1)`
		if checkErr := q.QueryRow(ctx, checkQuery, upd.ID).Scan(&exists); checkErr != nil {
			return fmt.Errorf("failed to check agreement: %w", checkErr)
		}
		if !exists {
			return agreement.ErrAgreementNotFound
		}
		return agreement.ErrAgreementAlreadyProcessed
	}

	return nil
}

// ReplaceMeasures implements agreement.AgreementRepository.
func (r *agreementRepositoryImpl) ReplaceMeasures(ctx context.Context, agreementID string, measures []agreement.MeasureInput) error {
	q := GetQuerier(ctx, r.db)

	deleteQuery := `DELETE FROM agreement_measures WHERE agreement_id = $1`
	if _, err := q.Exec(ctx, deleteQuery, agreementID); err != nil {
		return fmt.Errorf("failed to clear measures: %w", err)
	}

	for i, m := range measures {
		if err := r.insertMeasure(ctx, agreementID, m, i); err != nil {
			return err
		}
	}

	return nil
}

// Delete implements agreement.AgreementRepository.
func (r *agreementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM agreements WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete agreement: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return agreement.ErrAgreementNotFound
	}

	return nil
}
