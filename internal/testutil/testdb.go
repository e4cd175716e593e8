package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/pathkeeper/internal/db"
)

// NewTestDB opens a migrated in-memory store that lives for the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
