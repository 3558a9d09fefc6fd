package stream

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSyncStateStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "last_synced.json")
	store := NewSyncStateStore(path, true)

	_, found, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no state before first save")
	}

	if err := store.Save(42); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	state, found, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected state after save")
	}
	if state.LastSyncedSequence != 42 {
		t.Fatalf("last synced: got %d, want 42", state.LastSyncedSequence)
	}
	if state.UpdatedAt == "" {
		t.Fatal("expected updated_at to be set")
	}

	// No stale tmp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file should be renamed away, stat err: %v", err)
	}
}

func TestSyncStateStoreDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_synced.json")
	store := NewSyncStateStore(path, false)

	if err := store.Save(7); err != nil {
		t.Fatalf("disabled save failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("disabled store must not write, stat err: %v", err)
	}

	_, found, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("disabled store must not report state")
	}
}

func TestSyncStateStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_synced.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	store := NewSyncStateStore(path, true)
	if _, _, err := store.Load(); err == nil {
		t.Fatal("expected error for corrupt state file")
	}
}
