package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

func TestFindRootFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "grammar.js"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(tmp, "bindings", "go")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	root, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if root != tmp {
		t.Errorf("FindRoot() = %q, want %q", root, tmp)
	}
}

func TestFindRootAcceptsManifestMarker(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "tree-sitter.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := NewFinder().FindRoot(tmp)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if root != tmp {
		t.Errorf("FindRoot() = %q, want %q", root, tmp)
	}
}

func TestFindRootFromFilePath(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "grammar.js"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(tmp, "demo.luma")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := NewFinder().FindRoot(file)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if root != tmp {
		t.Errorf("FindRoot() = %q, want %q", root, tmp)
	}
}

func TestFindRootNotFound(t *testing.T) {
	_, err := NewFinder().FindRoot(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestFindRootEmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Errorf("expected invalid_config, got %v", err)
	}
}
