package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"daytrack/internal/constants"
	"daytrack/internal/storage/sqlite"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daytrack.db")
	store := sqlite.NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestCreateAndListBackups(t *testing.T) {
	dbPath := newTestDB(t)
	manager := NewManager(dbPath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		t.Errorf("backup name %q does not match naming scheme", name)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup should not be empty")
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := manager.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail for a missing database")
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "daytrack.db"))
	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := newTestDB(t)
	manager := NewManager(dbPath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := manager.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database missing after restore: %v", err)
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	dbPath := newTestDB(t)
	manager := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := manager.RestoreBackup(bogus); err == nil {
		t.Error("RestoreBackup should reject a non-sqlite file")
	}
}

func TestParseBackupTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{constants.BackupFilePrefix + "20250310-0930" + constants.BackupFileSuffix, true},
		{constants.BackupFilePrefix + "20250310-093045" + constants.BackupFileSuffix, true},
		{constants.BackupFilePrefix + "20250310-093045-2" + constants.BackupFileSuffix, true},
		{constants.BackupFilePrefix + "garbage" + constants.BackupFileSuffix, false},
	}
	for _, tt := range tests {
		if _, ok := parseBackupTimestamp(tt.name); ok != tt.ok {
			t.Errorf("parseBackupTimestamp(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}
