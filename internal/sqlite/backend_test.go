package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shelterpaws/cattery/pkg/types"
)

func testConfig(dir string) types.Config {
	return types.Config{
		Backend:   types.BackendSQLite,
		DataDir:   dir,
		Locations: types.DefaultLocations,
	}
}

func TestBackendAttach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	err := b.Attach(testConfig(tmpDir))
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	// Verify database file created
	dbPath := filepath.Join(tmpDir, "catalog.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("catalog.db not created")
	}

	// Verify JSONL file created
	jsonlPath := filepath.Join(tmpDir, "cats.jsonl")
	if _, err := os.Stat(jsonlPath); os.IsNotExist(err) {
		t.Error("cats.jsonl not created")
	}

	// Verify double attach fails
	err = b.Attach(testConfig(tmpDir))
	if err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	b.Detach()
}

func TestBackendAttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "postgres", Locations: types.DefaultLocations})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackendDetach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	ctx := context.Background()
	if _, err := b.List(ctx); err != types.ErrDetached {
		t.Errorf("expected ErrDetached from List, got %v", err)
	}
	if _, err := b.Get(ctx, "c1"); err != types.ErrDetached {
		t.Errorf("expected ErrDetached from Get, got %v", err)
	}
	if err := b.Insert(ctx, &types.Cat{Name: "x"}); err != types.ErrDetached {
		t.Errorf("expected ErrDetached from Insert, got %v", err)
	}
}

func TestBackendEmptyListNeverFails(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	cats, err := b.List(context.Background())
	if err != nil {
		t.Fatalf("List on empty store failed: %v", err)
	}
	if len(cats) != 0 {
		t.Errorf("expected empty slice, got %d cats", len(cats))
	}
}
