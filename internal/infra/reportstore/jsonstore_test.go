package reportstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func sampleReport() domain.ParseReport {
	return domain.NewParseReport("examples/Hello World.luma", 12, domain.Node{
		Kind:  "source_file",
		Named: true,
	})
}

func TestSaveReportWritesArtifact(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(fixedNow))

	id, err := store.SaveReport(sampleReport())
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	want := "20250314T092653Z_hello-world"
	if id != want {
		t.Errorf("id = %q, want %q", id, want)
	}

	path := filepath.Join(tmp, "reports", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}

	var got domain.ParseReport
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got.RootKind != "source_file" {
		t.Errorf("RootKind = %q, want source_file", got.RootKind)
	}
	if got.ParsedAt.IsZero() {
		t.Error("expected ParsedAt to be backfilled")
	}
}

func TestSaveReportRespectsConfiguredDir(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.ReportsDir = "out"

	store := NewJSONStore(tmp, cfg, WithNow(fixedNow))
	id, err := store.SaveReport(sampleReport())
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "out", id+".json")); err != nil {
		t.Errorf("expected artifact under out/: %v", err)
	}
}

func TestSaveReportIndex(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(fixedNow), WithIndex(true))

	id, err := store.SaveReport(sampleReport())
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "reports", "index.jsonl"))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}

	line := strings.TrimSpace(string(b))
	var entry struct {
		ID       string `json:"id"`
		RootKind string `json:"root_kind"`
	}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("index line is not valid JSON: %v", err)
	}
	if entry.ID != id {
		t.Errorf("index id = %q, want %q", entry.ID, id)
	}
	if entry.RootKind != "source_file" {
		t.Errorf("index root_kind = %q, want source_file", entry.RootKind)
	}
}

func TestSlugifyFallback(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(fixedNow))

	report := sampleReport()
	report.File = "...."

	id, err := store.SaveReport(report)
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if !strings.HasSuffix(id, "_parse") {
		t.Errorf("id = %q, want fallback slug parse", id)
	}
}
