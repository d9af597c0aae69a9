package db

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *Repositories {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	return NewRepositories(database)
}

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	database, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	for _, table := range []string{"schema_migrations", "profiles", "intake_events", "reminder_configs"} {
		var count int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist after migrations", table)
		}
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if _, err := OpenSQLite(dbPath); err != nil {
		t.Fatalf("first open: %v", err)
	}

	database, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}

	var applied int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected at least one applied migration")
	}

	var duplicates int64
	err = database.Raw(
		`SELECT COUNT(*) FROM (SELECT version FROM schema_migrations GROUP BY version HAVING COUNT(*) > 1)`,
	).Scan(&duplicates).Error
	if err != nil {
		t.Fatalf("check duplicate versions: %v", err)
	}
	if duplicates != 0 {
		t.Fatalf("expected no duplicate migration versions, got %d", duplicates)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\nCREATE INDEX idx_a ON a(id)")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(statements), statements)
	}
	if statements[0] != "CREATE TABLE a (id INTEGER)" {
		t.Fatalf("unexpected first statement %q", statements[0])
	}
}
