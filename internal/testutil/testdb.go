package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/hourlog/internal/db"
	"github.com/alexanderramin/hourlog/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with migrations and
// default rows applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore returns a Store over a fresh in-memory database together
// with the database handle.
func NewTestStore(t *testing.T) (*repository.Store, *sql.DB) {
	t.Helper()
	database := NewTestDB(t)
	return repository.NewStore(database), database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
