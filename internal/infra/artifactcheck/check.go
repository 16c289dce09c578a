// Package artifactcheck verifies the generated grammar artifacts on disk.
// It never interprets the grammar itself; it only checks that the
// `tree-sitter generate` outputs are present and consistent.
package artifactcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

type Verifier struct {
	grammarName string
}

func NewVerifier() *Verifier {
	return &Verifier{grammarName: domain.GrammarName}
}

var _ ports.ArtifactVerifier = (*Verifier)(nil)

// Verify inspects root for the generated artifacts and the grammar source.
// Findings are returned as issues; an error is reserved for an unusable root.
func (v *Verifier) Verify(root string) ([]domain.VerificationIssue, error) {
	if strings.TrimSpace(root) == "" {
		return nil, &domain.OpError{
			Op:   "artifactcheck.verify",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("root is empty"),
		}
	}

	var issues []domain.VerificationIssue

	grammarJS := filepath.Join(root, "grammar.js")
	if !fileNonEmpty(grammarJS) {
		issues = append(issues, domain.VerificationIssue{
			Path:    grammarJS,
			Message: "grammar source missing or empty",
		})
	}

	parserC := filepath.Join(root, "src", "parser.c")
	if !fileNonEmpty(parserC) {
		issues = append(issues, domain.VerificationIssue{
			Path:    parserC,
			Message: "generated parser missing or empty (run `tree-sitter generate`)",
		})
	}

	issues = append(issues, v.checkGrammarJSON(filepath.Join(root, "src", "grammar.json"))...)
	issues = append(issues, checkNodeTypes(filepath.Join(root, "src", "node-types.json"))...)

	return issues, nil
}

func (v *Verifier) checkGrammarJSON(path string) []domain.VerificationIssue {
	b, err := os.ReadFile(path)
	if err != nil {
		return []domain.VerificationIssue{{
			Path:    path,
			Message: "generated grammar.json missing (run `tree-sitter generate`)",
		}}
	}

	var g struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &g); err != nil {
		return []domain.VerificationIssue{{
			Path:    path,
			Message: fmt.Sprintf("grammar.json is not valid JSON: %v", err),
		}}
	}

	if g.Name != v.grammarName {
		return []domain.VerificationIssue{{
			Path:    path,
			Message: fmt.Sprintf("grammar.json declares name %q, want %q", g.Name, v.grammarName),
		}}
	}

	return nil
}

func checkNodeTypes(path string) []domain.VerificationIssue {
	b, err := os.ReadFile(path)
	if err != nil {
		return []domain.VerificationIssue{{
			Path:    path,
			Message: "generated node-types.json missing (run `tree-sitter generate`)",
		}}
	}

	var kinds []domain.NodeKindInfo
	if err := json.Unmarshal(b, &kinds); err != nil {
		return []domain.VerificationIssue{{
			Path:    path,
			Message: fmt.Sprintf("node-types.json is not a valid node-type array: %v", err),
		}}
	}

	if len(kinds) == 0 {
		return []domain.VerificationIssue{{
			Path:    path,
			Message: "node-types.json declares no node kinds",
		}}
	}

	return nil
}

func fileNonEmpty(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
