package main

import (
	"testing"

	"github.com/cwbudde/primsketch/internal/checkpoint"
)

func withCheckpointsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	original := checkpointsDir
	checkpointsDir = dir
	t.Cleanup(func() { checkpointsDir = original })
	return dir
}

func TestRunListCheckpointsEmpty(t *testing.T) {
	withCheckpointsDir(t)
	if err := runListCheckpoints(nil, nil); err != nil {
		t.Fatalf("runListCheckpoints: %v", err)
	}
}

func TestRunListCheckpointsWithEntries(t *testing.T) {
	dir := withCheckpointsDir(t)
	store, err := checkpoint.NewFSStore(dir)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	cfg := checkpoint.Config{InFile: "a.png", Shape: "triangle", NumShapes: 10}
	cp, err := checkpoint.New("job-1", cfg, 1.5, nil)
	if err != nil {
		t.Fatalf("checkpoint.New: %v", err)
	}
	if err := store.Save(cp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := runListCheckpoints(nil, nil); err != nil {
		t.Fatalf("runListCheckpoints: %v", err)
	}
}

func TestRunRemoveCheckpoint(t *testing.T) {
	dir := withCheckpointsDir(t)
	store, err := checkpoint.NewFSStore(dir)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	cfg := checkpoint.Config{InFile: "a.png", Shape: "triangle", NumShapes: 10}
	cp, err := checkpoint.New("job-2", cfg, 1.5, nil)
	if err != nil {
		t.Fatalf("checkpoint.New: %v", err)
	}
	if err := store.Save(cp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := runRemoveCheckpoint(nil, []string{"job-2"}); err != nil {
		t.Fatalf("runRemoveCheckpoint: %v", err)
	}
	if _, err := store.Load("job-2"); err == nil {
		t.Fatalf("expected checkpoint to be removed")
	}
}

func TestRunRemoveCheckpointMissing(t *testing.T) {
	withCheckpointsDir(t)
	if err := runRemoveCheckpoint(nil, []string{"does-not-exist"}); err == nil {
		t.Fatalf("expected an error removing a missing checkpoint")
	}
}
