package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/forgeline/tsbridge/internal/core/domain"
)

func TestFileStore_EnsureLoaded(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.ts")
	if err := os.WriteFile(path, []byte("const a = 1;\n"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := domain.NewFileStore()
	s.EnsureLoaded(path)

	f := s.Get(path)
	if f == nil {
		t.Fatal("expected file to be tracked")
	}
	if f.Version != 0 {
		t.Errorf("expected version 0, got %d", f.Version)
	}
	if f.Text != "const a = 1;\n" {
		t.Errorf("unexpected content: %q", f.Text)
	}
	if s.ProjectVersion() != 1 {
		t.Errorf("expected project version 1, got %d", s.ProjectVersion())
	}

	// Loading again is a no-op.
	s.EnsureLoaded(path)
	if s.ProjectVersion() != 1 {
		t.Errorf("expected project version to stay at 1, got %d", s.ProjectVersion())
	}
}

func TestFileStore_EnsureLoaded_MissingFile(t *testing.T) {
	s := domain.NewFileStore()
	missing := filepath.Join(t.TempDir(), "does-not-exist.ts")

	// Must not panic or error; the path simply stays untracked.
	s.EnsureLoaded(missing)

	if s.Get(missing) != nil {
		t.Error("expected missing path to stay untracked")
	}
	if s.ProjectVersion() != 0 {
		t.Errorf("expected project version 0, got %d", s.ProjectVersion())
	}
}

func TestFileStore_Update_NoOp(t *testing.T) {
	s := domain.NewFileStore()
	s.Update("/p/a.ts", "let x = 1;")

	before := s.Get("/p/a.ts").Snapshot()
	pvBefore := s.ProjectVersion()

	s.Update("/p/a.ts", "let x = 1;")
	s.Update("/p/a.ts", "let x = 1;")

	after := s.Get("/p/a.ts").Snapshot()
	if after.Version != before.Version {
		t.Errorf("no-op update changed file version: %d -> %d", before.Version, after.Version)
	}
	if after.Hash != before.Hash {
		t.Error("no-op update changed snapshot hash")
	}
	if s.ProjectVersion() != pvBefore {
		t.Errorf("no-op update changed project version: %d -> %d", pvBefore, s.ProjectVersion())
	}
}

func TestFileStore_Update_ContentChange(t *testing.T) {
	s := domain.NewFileStore()
	s.Update("/p/a.ts", "let x = 1;")

	if got := s.Get("/p/a.ts").Version; got != 0 {
		t.Fatalf("expected new file at version 0, got %d", got)
	}
	if s.ProjectVersion() != 1 {
		t.Fatalf("expected project version 1, got %d", s.ProjectVersion())
	}

	s.Update("/p/a.ts", "let x = 2;")

	f := s.Get("/p/a.ts")
	if f.Version != 1 {
		t.Errorf("expected file version 1 after change, got %d", f.Version)
	}
	if s.ProjectVersion() != 2 {
		t.Errorf("expected project version 2 after change, got %d", s.ProjectVersion())
	}
	if snap := f.Snapshot(); snap.Text != "let x = 2;" || snap.Version != 1 {
		t.Errorf("snapshot does not reflect current content/version: %+v", snap)
	}
}

func TestFileStore_List(t *testing.T) {
	s := domain.NewFileStore()
	s.Update("/p/b.ts", "")
	s.Update("/p/a.ts", "")

	got := s.List()
	if len(got) != 2 || got[0] != "/p/a.ts" || got[1] != "/p/b.ts" {
		t.Errorf("unexpected list: %v", got)
	}
}
