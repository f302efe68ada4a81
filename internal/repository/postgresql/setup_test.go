package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

// testDatabase connects to TEST_DATABASE_URL, skipping the test when it is
// unset so the suite stays runnable without a local Postgres.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
	})
	require.NoError(t, testDBErr, "failed to connect to test database")

	return testDB
}

func truncateTables(t *testing.T, db *database.DB, tables ...string) {
	t.Helper()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}

	require.NoError(t, tx.Commit(ctx))
}
