// ABOUTME: Tests for checkpoint persistence: save/restore round trips and
// ABOUTME: first-run behavior when no checkpoint file exists yet.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2389-research/quill/internal/provider"
	"github.com/2389-research/quill/internal/wordpress"
)

func testPost() *wordpress.Post {
	return &wordpress.Post{
		ID:       42,
		Date:     "2024-03-01T09:00:00",
		Modified: "2024-03-02T10:30:00",
		Status:   "draft",
		Title:    &wordpress.RenderedField{Raw: "Hello", Rendered: "Hello"},
		Content:  &wordpress.ContentField{Raw: "<p>body</p>", Rendered: "<p>body</p>"},
		Tags:     []int{3, 7},
	}
}

func TestNewStoreRequiresPath(t *testing.T) {
	if _, err := NewStore(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRestoreMissingFileLeavesStateEmpty(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "checkpoint.json"))
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	state := provider.NewState()
	if err := store.Restore(state); err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if state.Current() != nil {
		t.Errorf("expected empty state, got %+v", state.Current())
	}
}

func TestSaveAndRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	state := provider.NewState()
	state.SetCurrent(testPost())
	if err := store.Save(state); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	restored := provider.NewState()
	if err := store.Restore(restored); err != nil {
		t.Fatalf("Restore error: %v", err)
	}

	got := restored.Current()
	if got == nil {
		t.Fatal("expected restored state to hold a post")
	}
	if got.ID != 42 || got.Status != "draft" {
		t.Errorf("unexpected post: %+v", got)
	}
	if got.Title == nil || got.Title.Raw != "Hello" {
		t.Errorf("unexpected title: %+v", got.Title)
	}
	if len(got.Tags) != 2 || got.Tags[0] != 3 {
		t.Errorf("unexpected tags: %v", got.Tags)
	}
}

func TestSaveEmptyStateRestoresEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	if err := store.Save(provider.NewState()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// Restoring an empty checkpoint clears any selection.
	restored := provider.NewState()
	restored.SetCurrent(testPost())
	if err := store.Restore(restored); err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if restored.Current() != nil {
		t.Errorf("expected empty state, got %+v", restored.Current())
	}
}

func TestSessionIDSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	if err := store.Save(provider.NewState()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	original := store.SessionID()

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	if err := reopened.Restore(provider.NewState()); err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if reopened.SessionID() != original {
		t.Errorf("expected session id %s to survive, got %s", original, reopened.SessionID())
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "checkpoint.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	if err := store.Save(provider.NewState()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected checkpoint file at %s: %v", path, err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "checkpoint.json"))
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	state := provider.NewState()
	state.SetCurrent(testPost())
	if err := store.Save(state); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".checkpoint-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestRestoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	if err := store.Restore(provider.NewState()); err == nil {
		t.Fatal("expected error for corrupt checkpoint")
	}
}
