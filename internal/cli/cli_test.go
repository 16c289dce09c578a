package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

// --- parseExtractRules ---

func TestParseExtractRules(t *testing.T) {
	rules, err := parseExtractRules([]string{"root=$.kind", "depth = $.children[0].kind"})
	if err != nil {
		t.Fatalf("parseExtractRules() error = %v", err)
	}
	if rules["root"] != "$.kind" {
		t.Errorf("root = %q, want $.kind", rules["root"])
	}
	if rules["depth"] != "$.children[0].kind" {
		t.Errorf("depth = %q", rules["depth"])
	}
}

func TestParseExtractRulesInvalid(t *testing.T) {
	cases := []string{"noequals", "=expr", "name=", " = "}
	for _, c := range cases {
		if _, err := parseExtractRules([]string{c}); err == nil {
			t.Errorf("parseExtractRules(%q) expected error", c)
		}
	}
}

func TestParseExtractRulesDuplicate(t *testing.T) {
	if _, err := parseExtractRules([]string{"a=$.kind", "a=$.kind"}); err == nil {
		t.Error("expected duplicate name error")
	}
}

func TestParseExtractRulesEmpty(t *testing.T) {
	rules, err := parseExtractRules(nil)
	if err != nil {
		t.Fatalf("parseExtractRules(nil) error = %v", err)
	}
	if rules != nil {
		t.Errorf("expected nil rules, got %v", rules)
	}
}

// --- printReport ---

func sampleReport() domain.ParseReport {
	report := domain.NewParseReport("demo.luma", 10, domain.Node{
		Kind:  "source_file",
		Named: true,
		Children: []domain.Node{
			{Kind: "statement", Named: true},
			{Kind: ";", Named: false},
		},
	})
	report.ParsedAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return report
}

func TestPrintReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "some-id", "json"); err != nil {
		t.Fatalf("printReport() error = %v", err)
	}

	var payload struct {
		ReportID string             `json:"report_id"`
		Report   domain.ParseReport `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if payload.ReportID != "some-id" {
		t.Errorf("report_id = %q, want some-id", payload.ReportID)
	}
	if payload.Report.RootKind != "source_file" {
		t.Errorf("root_kind = %q", payload.Report.RootKind)
	}
}

func TestPrintReportSexp(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "", "sexp"); err != nil {
		t.Fatalf("printReport() error = %v", err)
	}

	want := "(source_file (statement))\n"
	if buf.String() != want {
		t.Errorf("sexp output = %q, want %q", buf.String(), want)
	}
}

func TestPrintReportPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "", "pretty"); err != nil {
		t.Fatalf("printReport() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Root:     source_file") {
		t.Errorf("missing root header:\n%s", out)
	}
	if !strings.Contains(out, "  statement ") {
		t.Errorf("missing indented child:\n%s", out)
	}
	if !strings.Contains(out, `";"`) {
		t.Errorf("anonymous node not quoted:\n%s", out)
	}
}

func TestPrintReportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

// --- nodeLabel ---

func TestNodeLabel(t *testing.T) {
	cases := []struct {
		node domain.Node
		want string
	}{
		{domain.Node{Kind: "statement", Named: true}, "statement"},
		{domain.Node{Kind: ";", Named: false}, `";"`},
		{domain.Node{Kind: "statement", Named: true, Missing: true}, "MISSING statement"},
	}
	for _, c := range cases {
		if got := nodeLabel(c.node); got != c.want {
			t.Errorf("nodeLabel(%+v) = %q, want %q", c.node, got, c.want)
		}
	}
}

// --- formatRange ---

func TestFormatRange(t *testing.T) {
	r := domain.Range{
		Start: domain.Point{Row: 1, Column: 2},
		End:   domain.Point{Row: 3, Column: 4},
	}
	if got := formatRange(r); got != "[1:2 - 3:4]" {
		t.Errorf("formatRange = %q", got)
	}
}

// --- fileExists ---

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.luma")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
	if fileExists(filepath.Join(tmp, "missing.luma")) {
		t.Error("expected fileExists=false for missing file")
	}
	if fileExists(tmp) {
		t.Error("expected fileExists=false for directory")
	}
}

// --- printKinds ---

func TestPrintKindsPretty(t *testing.T) {
	var buf bytes.Buffer
	kinds := []domain.NodeKindInfo{
		{Type: "statement", Named: true},
		{Type: ";", Named: false},
	}
	if err := printKinds(&buf, kinds, "pretty"); err != nil {
		t.Fatalf("printKinds() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "statement\n") {
		t.Errorf("missing named kind:\n%s", out)
	}
	if !strings.Contains(out, `";"`) {
		t.Errorf("anonymous kind not quoted:\n%s", out)
	}
	if !strings.Contains(out, "2 kind(s)") {
		t.Errorf("missing count:\n%s", out)
	}
}

// --- printIssues ---

func TestPrintIssuesPrettyOK(t *testing.T) {
	var buf bytes.Buffer
	if err := printIssues(&buf, "/repo", nil, "pretty"); err != nil {
		t.Fatalf("printIssues() error = %v", err)
	}
	if !strings.Contains(buf.String(), "✓ grammar artifacts OK") {
		t.Errorf("missing OK marker:\n%s", buf.String())
	}
}

func TestPrintIssuesPrettyFindings(t *testing.T) {
	var buf bytes.Buffer
	issues := []domain.VerificationIssue{{Path: "src/parser.c", Message: "missing"}}
	if err := printIssues(&buf, "/repo", issues, "pretty"); err != nil {
		t.Fatalf("printIssues() error = %v", err)
	}
	if !strings.Contains(buf.String(), "✗ src/parser.c — missing") {
		t.Errorf("missing finding line:\n%s", buf.String())
	}
}
