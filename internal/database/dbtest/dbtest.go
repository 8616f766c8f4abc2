// Package dbtest opens throwaway in-memory stores for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/fekuna/omnipos-invoice-service/internal/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// New returns a migrated, isolated in-memory sqlite database that is closed when
// the test finishes.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := sqlx.Open(database.DriverSQLite, dsn)
	require.NoError(t, err)

	// The in-memory database lives as long as this connection does.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	require.NoError(t, database.Migrate(context.Background(), db))

	t.Cleanup(func() { db.Close() })
	return db
}
