package nodetypes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

func writeNodeTypes(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "src")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "node-types.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestKindsSortedAndDeduped(t *testing.T) {
	tmp := t.TempDir()
	writeNodeTypes(t, tmp, `[
		{"type": "statement", "named": true},
		{"type": "comment", "named": true},
		{"type": "statement", "named": true},
		{"type": ";", "named": false}
	]`)

	kinds, err := NewCatalog(tmp).Kinds()
	if err != nil {
		t.Fatalf("Kinds() error = %v", err)
	}

	want := []domain.NodeKindInfo{
		{Type: ";", Named: false},
		{Type: "comment", Named: true},
		{Type: "statement", Named: true},
	}
	if len(kinds) != len(want) {
		t.Fatalf("len(kinds) = %d, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %+v, want %+v", i, kinds[i], want[i])
		}
	}
}

func TestKindsMissingFile(t *testing.T) {
	_, err := NewCatalog(t.TempDir()).Kinds()
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestKindsMalformedFile(t *testing.T) {
	tmp := t.TempDir()
	writeNodeTypes(t, tmp, `{"oops": true}`)

	_, err := NewCatalog(tmp).Kinds()
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Errorf("expected invalid_config, got %v", err)
	}
}
