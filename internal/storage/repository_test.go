// ABOUTME: Tests for Repository implementations.
// ABOUTME: Runs the same load/save contract against sqlite, badger, and json file backends.
package storage

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func backends(t *testing.T) map[string]Repository {
	t.Helper()

	bs, err := OpenBadger(filepath.Join(t.TempDir(), "badger"), nil)
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	t.Cleanup(func() { _ = bs.Close() })

	fs, err := NewFileStore(filepath.Join(t.TempDir(), "json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	return map[string]Repository{
		"sqlite": setupTestDB(t),
		"badger": bs,
		"json":   fs,
	}
}

func TestRepositoryContract(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := repo.LoadState()
			if err != nil {
				t.Fatalf("LoadState on empty backend failed: %v", err)
			}
			if got != nil {
				t.Errorf("expected nil blob from empty backend, got %q", got)
			}

			first := []byte(`{"history":[]}`)
			if err := repo.SaveState(first); err != nil {
				t.Fatalf("SaveState failed: %v", err)
			}
			second := []byte(`{"history":[{"id":"w1"}],"templates":[]}`)
			if err := repo.SaveState(second); err != nil {
				t.Fatalf("SaveState overwrite failed: %v", err)
			}

			got, err = repo.LoadState()
			if err != nil {
				t.Fatalf("LoadState failed: %v", err)
			}
			if string(got) != string(second) {
				t.Errorf("LoadState = %q, want %q", got, second)
			}
		})
	}
}

func TestDBPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftlog.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.SaveState([]byte(`{"v":1}`)); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	updated, err := db.UpdatedAt()
	if err != nil {
		t.Fatalf("UpdatedAt failed: %v", err)
	}
	if updated.IsZero() {
		t.Error("expected updated_at to be set")
	}
	_ = db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	got, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if string(got) != `{"v":1}` {
		t.Errorf("LoadState = %q", got)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != "/tmp/xdg-data/liftlog" {
		t.Errorf("DataDir = %s", got)
	}
	if got := DefaultDBPath(); got != "/tmp/xdg-data/liftlog/liftlog.db" {
		t.Errorf("DefaultDBPath = %s", got)
	}
}
