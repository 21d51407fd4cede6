package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/storage"
)

// setupTestDB creates a result log holding one result and returns its path.
func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "pickadate.db")
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	defer store.Close()

	if err := store.SaveResult(testResult("first")); err != nil {
		t.Fatalf("failed to save result: %v", err)
	}
	return dbPath
}

func testResult(id string) models.Result {
	return models.Result{
		ID:          id,
		Slug:        "jane",
		DisplayName: "Jane",
		InputMode:   "buttons",
		Policy:      "top",
		Picks:       []models.RatedItem{{ItemID: 1, Title: "Coffee", Value: 100}},
		Ratings:     []models.RatedItem{{ItemID: 1, Title: "Coffee", Value: 100}},
		CompletedAt: time.Now(),
	}
}

func resultIDs(t *testing.T, dbPath string) []string {
	t.Helper()
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer store.Close()

	results, err := store.GetResults(0)
	if err != nil {
		t.Fatalf("failed to list results: %v", err)
	}
	var ids []string
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Dir(backupPath) != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("backup written to %s, want the backups directory", backupPath)
	}
	if ids := resultIDs(t, backupPath); len(ids) != 1 || ids[0] != "first" {
		t.Errorf("backup contains %v, want [first]", ids)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up a missing database")
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2026, 2, 14, 20, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup path %s", p)
		}
		seen[p] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	if filepath.Base(backups[0].Path) != "pickadate-20260214-200000-2.db" {
		t.Errorf("newest backup = %s, want the highest counter", filepath.Base(backups[0].Path))
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	total := constants.MaxBackups + 3
	for i := 0; i < total; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		mgr.now = func() time.Time { return at }
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("got %d backups after rotation, want %d", len(backups), constants.MaxBackups)
	}
	oldestKept := start.Add(time.Duration(total-constants.MaxBackups) * time.Hour)
	if !backups[len(backups)-1].Timestamp.Equal(oldestKept) {
		t.Errorf("oldest kept backup = %v, want %v", backups[len(backups)-1].Timestamp, oldestKept)
	}
}

func TestListBackups(t *testing.T) {
	t.Run("no backup directory", func(t *testing.T) {
		mgr := NewManager(filepath.Join(t.TempDir(), "pickadate.db"))
		backups, err := mgr.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups failed: %v", err)
		}
		if len(backups) != 0 {
			t.Errorf("got %d backups, want 0", len(backups))
		}
	})

	t.Run("ignores unrelated files", func(t *testing.T) {
		mgr := NewManager(filepath.Join(t.TempDir(), "pickadate.db"))
		if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{
			"notes.txt",
			"pickadate-garbage.db",
			"pickadate-20260101-120000-x.db",
			"pickadate-20260101-120000.db",
		} {
			if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
				t.Fatal(err)
			}
		}

		backups, err := mgr.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups failed: %v", err)
		}
		if len(backups) != 1 {
			t.Fatalf("got %d backups, want 1", len(backups))
		}
		want := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
		if !backups[0].Timestamp.Equal(want) {
			t.Errorf("timestamp = %v, want %v", backups[0].Timestamp, want)
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = func() time.Time { return time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local) }

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.SaveResult(testResult("second")); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	store.Close()

	preRestore, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	if ids := resultIDs(t, dbPath); len(ids) != 1 || ids[0] != "first" {
		t.Errorf("restored database contains %v, want [first]", ids)
	}
	if preRestore == "" {
		t.Fatal("expected a pre-restore backup")
	}
	if ids := resultIDs(t, preRestore); len(ids) != 2 {
		t.Errorf("pre-restore backup contains %v, want both results", ids)
	}
}

func TestRestoreBackupRejectsInvalidFile(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("this is not sqlite, not even close to a database header"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("expected error restoring an invalid backup")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error restoring a missing backup")
	}
}

func TestResolveBackupPath(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	got, err := mgr.ResolveBackupPath(filepath.Base(backupPath))
	if err != nil {
		t.Fatalf("ResolveBackupPath(name) failed: %v", err)
	}
	if got != backupPath {
		t.Errorf("ResolveBackupPath(name) = %s, want %s", got, backupPath)
	}

	if got, err := mgr.ResolveBackupPath(backupPath); err != nil || got != backupPath {
		t.Errorf("ResolveBackupPath(abs) = %s, %v", got, err)
	}
	if _, err := mgr.ResolveBackupPath("nope.db"); err == nil {
		t.Error("expected error for unknown backup")
	}
}
