package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
	"github.com/hrpms/pms-backend-go/internal/domain/master/grade"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
	"github.com/hrpms/pms-backend-go/internal/repository/postgresql"
)

func cleanupAgreementTables(t *testing.T, db *database.DB) {
	truncateTables(t, db, "agreement_measures", "agreements", "users", "departments")
}

func createTestDepartment(t *testing.T, ctx context.Context, db *database.DB, name string) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO departments (id, name)
		VALUES (uuidv7(), $1)
		RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestUser(t *testing.T, ctx context.Context, db *database.DB, email, surname string, departmentID string) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO users (id, email, surname, last_name, department_id)
		VALUES (uuidv7(), $1, $2, 'Test', $3)
		RETURNING id
	`, email, surname, departmentID).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestAgreement(t *testing.T, ctx context.Context, repo agreement.AgreementRepository, db *database.DB, departmentID string) agreement.Agreement {
	t.Helper()

	creatorID := createTestUser(t, ctx, db, "creator@example.com", "Creator", departmentID)
	supervisorID := createTestUser(t, ctx, db, "supervisor@example.com", "Supervisor", departmentID)
	hodID := createTestUser(t, ctx, db, "hod@example.com", "Hod", departmentID)

	created, err := repo.Create(ctx, agreement.Agreement{
		Title:        "Annual Performance Agreement",
		Period:       agreement.PeriodAnnual,
		Status:       agreement.StatusDraft,
		CreatorID:    creatorID,
		SupervisorID: supervisorID,
		HODID:        hodID,
		DepartmentID: departmentID,
		Measures: []agreement.Measure{
			{Name: "Deliver quarterly reports"},
			{Name: "Mentor two staff"},
		},
	})
	require.NoError(t, err)
	return created
}

// ===== AGREEMENT REPOSITORY TESTS =====

func TestAgreementRepository_Create_LoadsPartiesAndMeasures(t *testing.T) {
	db := testDatabase(t)
	defer cleanupAgreementTables(t, db)
	cleanupAgreementTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAgreementRepository(db)
	deptID := createTestDepartment(t, ctx, db, "Finance")

	created := createTestAgreement(t, ctx, repo, db, deptID)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, agreement.StatusDraft, created.Status)
	assert.Equal(t, "Creator", created.Creator.Surname)
	assert.Equal(t, "Supervisor", created.Supervisor.Surname)
	assert.Equal(t, "Hod", created.HOD.Surname)
	require.Len(t, created.Measures, 2)
	assert.Equal(t, "Deliver quarterly reports", created.Measures[0].Name)
	assert.Equal(t, 0, created.Measures[0].SortOrder)
	assert.Equal(t, 1, created.Measures[1].SortOrder)
}

func TestAgreementRepository_UpdateStatus_GuardedWrite(t *testing.T) {
	db := testDatabase(t)
	defer cleanupAgreementTables(t, db)
	cleanupAgreementTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAgreementRepository(db)
	deptID := createTestDepartment(t, ctx, db, "Finance")
	created := createTestAgreement(t, ctx, repo, db, deptID)

	err := repo.UpdateStatus(ctx, agreement.StatusUpdate{
		ID:     created.ID,
		Expect: agreement.StatusDraft,
		Status: agreement.StatusPendingSupervisor,
	})
	assert.NoError(t, err)

	// The row moved on; a second write expecting draft must not apply.
	err = repo.UpdateStatus(ctx, agreement.StatusUpdate{
		ID:     created.ID,
		Expect: agreement.StatusDraft,
		Status: agreement.StatusPendingSupervisor,
	})
	assert.ErrorIs(t, err, agreement.ErrAgreementAlreadyProcessed)

	reloaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, agreement.StatusPendingSupervisor, reloaded.Status)
}

func TestAgreementRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testDatabase(t)
	defer cleanupAgreementTables(t, db)
	cleanupAgreementTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAgreementRepository(db)

	err := repo.UpdateStatus(ctx, agreement.StatusUpdate{
		ID:     "00000000-0000-0000-0000-000000000000",
		Expect: agreement.StatusDraft,
		Status: agreement.StatusPendingSupervisor,
	})
	assert.ErrorIs(t, err, agreement.ErrAgreementNotFound)
}

func TestAgreementRepository_ListByDepartment_Scoping(t *testing.T) {
	db := testDatabase(t)
	defer cleanupAgreementTables(t, db)
	cleanupAgreementTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAgreementRepository(db)
	deptID := createTestDepartment(t, ctx, db, "Finance")
	otherDeptID := createTestDepartment(t, ctx, db, "Human Resources")
	createTestAgreement(t, ctx, repo, db, deptID)

	scoped, err := repo.ListByDepartment(ctx, &deptID)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	empty, err := repo.ListByDepartment(ctx, &otherDeptID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// nil department fetches across departments
	all, err := repo.ListByDepartment(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// ===== GRADE REPOSITORY TESTS =====

func TestGradeRepository_CRUD(t *testing.T) {
	db := testDatabase(t)
	defer truncateTables(t, db, "grades")
	truncateTables(t, db, "grades")

	ctx := context.Background()
	repo := postgresql.NewGradeRepository(db)

	created, err := repo.Create(ctx, grade.Grade{Name: "U4"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, grade.Grade{Name: "U4"})
	assert.ErrorIs(t, err, grade.ErrGradeExists)

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "U4", retrieved.Name)

	newName := "U4 Upper"
	err = repo.Update(ctx, grade.UpdateGradeRequest{ID: created.ID, Name: &newName})
	assert.NoError(t, err)

	err = repo.Delete(ctx, created.ID)
	assert.NoError(t, err)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, grade.ErrGradeNotFound)
}
