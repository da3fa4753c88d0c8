package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE widgets (id INTEGER PRIMARY KEY, name TEXT);"),
		},
		"002_add_color.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE widgets ADD COLUMN color TEXT;"),
		},
	}
}

func TestFreshDatabaseStartsAtZero(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS())

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	// The migrated schema is usable.
	if _, err := db.Exec("INSERT INTO widgets (name, color) VALUES ('a', 'red')"); err != nil {
		t.Errorf("schema missing after migration: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS())

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 applied on second run, got %d", applied)
	}
}

func TestReadMigrationFilesRejectsDuplicates(t *testing.T) {
	fs := testFS()
	fs["002_dup.sql"] = &fstest.MapFile{Data: []byte("SELECT 1;")}
	runner := NewRunner(openTestDB(t), fs)

	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("expected error for duplicate version")
	}
}

func TestValidateVersionRejectsNewerDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	if err := runner.EnsureSchemaVersionTable(); err != nil {
		t.Fatalf("EnsureSchemaVersionTable failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatalf("failed to seed version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error when database is newer than the build")
	}
}
