package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Fund table
		CREATE TABLE fund (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			ticker TEXT NOT NULL,
			investment_type TEXT NOT NULL DEFAULT 'RF',
			purchase_price REAL NOT NULL DEFAULT 0,
			quantity REAL NOT NULL DEFAULT 0,
			purchase_date TEXT NOT NULL,
			last_price REAL NOT NULL DEFAULT 0
		);

		-- Stock table
		CREATE TABLE stock (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			ticker TEXT NOT NULL,
			sector TEXT NOT NULL DEFAULT 'unavailable',
			purchase_price REAL NOT NULL DEFAULT 0,
			shares INTEGER NOT NULL DEFAULT 0,
			purchase_date TEXT NOT NULL,
			last_price REAL NOT NULL DEFAULT 0
		);
	`

	_, err := db.Exec(schema)
	return err
}
