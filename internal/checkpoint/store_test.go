package checkpoint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FSStore {
	t.Helper()
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return store
}

func TestFSStoreSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	cfg := Config{InFile: "in.png", Shape: "rectangle", NumShapes: 50, Seed: 3}
	cp, err := New("abc123", cfg, 99.5, sampleHistory())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := store.Save(cp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load("abc123")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ID != cp.ID || loaded.Config.InFile != cp.Config.InFile || loaded.Score != cp.Score {
		t.Fatalf("loaded checkpoint %+v does not match saved %+v", loaded, cp)
	}
	if len(loaded.Records) != len(cp.Records) {
		t.Fatalf("got %d records, want %d", len(loaded.Records), len(cp.Records))
	}

	history, err := loaded.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != len(sampleHistory()) {
		t.Fatalf("got %d decoded states, want %d", len(history), len(sampleHistory()))
	}
}

func TestFSStoreLoadMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load("does-not-exist")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want an error matching ErrNotFound", err)
	}
}

func TestFSStoreDeleteMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)
	err := store.Delete("does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want an error matching ErrNotFound", err)
	}
}

func TestFSStoreDeleteRemovesFile(t *testing.T) {
	store := newTestStore(t)
	cfg := Config{InFile: "in.png", NumShapes: 10}
	cp, err := New("to-delete", cfg, 1, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Save(cp); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("to-delete"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("to-delete"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v after delete, want ErrNotFound", err)
	}
}

func TestFSStoreListReturnsAllCheckpoints(t *testing.T) {
	store := newTestStore(t)
	ids := []string{"first", "second", "third"}
	for i, id := range ids {
		cfg := Config{InFile: "in.png", Shape: "ellipse", NumShapes: 20 + i}
		cp, err := New(id, cfg, float32(i), sampleHistory())
		if err != nil {
			t.Fatalf("New(%s): %v", id, err)
		}
		if err := store.Save(cp); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != len(ids) {
		t.Fatalf("got %d checkpoints, want %d", len(infos), len(ids))
	}

	seen := make(map[string]CheckpointInfo)
	for _, info := range infos {
		seen[info.ID] = info
	}
	for _, id := range ids {
		info, ok := seen[id]
		if !ok {
			t.Fatalf("missing checkpoint %q in listing", id)
		}
		if info.Progress != len(sampleHistory()) {
			t.Fatalf("checkpoint %q: progress = %d, want %d", id, info.Progress, len(sampleHistory()))
		}
	}
}

func TestFSStoreListEmptyDirReturnsNil(t *testing.T) {
	store := newTestStore(t)
	infos, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("got %d checkpoints, want 0", len(infos))
	}
}

func TestFSStoreListSkipsNonJSONFiles(t *testing.T) {
	store := newTestStore(t)
	cfg := Config{InFile: "in.png", NumShapes: 10}
	cp, err := New("keep", cfg, 0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Save(cp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A stray non-checkpoint file in the base directory should not
	// surface in List or break it.
	strayPath := filepath.Join(store.baseDir, "notes.txt")
	if err := os.WriteFile(strayPath, []byte("not a checkpoint"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("got %d checkpoints, want 1", len(infos))
	}
}
