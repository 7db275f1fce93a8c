// ABOUTME: Tests for the SQLite backend.
// ABOUTME: Verifies key/value semantics, persistence across reopen, and XDG paths.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/mood/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "mood.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDBGetMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Get(PayloadKey)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDBSetOverwrites(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Set("k", []byte("first")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := db.Set("k", []byte("second")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := db.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %q, want second", got)
	}

	if _, err := db.UpdatedAt("k"); err != nil {
		t.Errorf("UpdatedAt failed: %v", err)
	}
	if _, err := db.UpdatedAt("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatedAt(missing) = %v, want ErrNotFound", err)
	}
}

func TestDBPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "mood.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store := NewStore(db)
	d := mustDate(t, "2024-01-01")
	if _, err := store.Upsert(d, models.MoodHappy); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db2.Close()

	records, err := NewStore(db2).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 || records[0].Date != d || records[0].Mood != models.MoodHappy {
		t.Errorf("unexpected records after reopen: %+v", records)
	}

	info, err := os.Stat(dbPath)
	if err != nil {
		t.Fatalf("stat db: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("db permissions = %o, want 600", perm)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	if got := DataDir(); got != filepath.Join(tmp, "mood") {
		t.Errorf("DataDir() = %q", got)
	}
}

func TestStoreOnSQLiteRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	payload := `[{"date":"2024-01-01","mood":"normal"},{"date":"2024-03-01","mood":"mutlu"}]`
	if err := db.Set(PayloadKey, []byte(payload)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, _ := db.Get(PayloadKey)
	if string(got) != payload {
		t.Errorf("payload changed:\n got %s\nwant %s", got, payload)
	}
}
