package usecase

import (
	"errors"
	"testing"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

type fakeLocator struct {
	root string
	err  error
}

func (f *fakeLocator) FindRoot(string) (string, error) { return f.root, f.err }

type fakeVerifier struct {
	issues []domain.VerificationIssue
	err    error
	got    string
}

func (f *fakeVerifier) Verify(root string) ([]domain.VerificationIssue, error) {
	f.got = root
	return f.issues, f.err
}

func TestVerifyArtifactsResolvesRoot(t *testing.T) {
	verifier := &fakeVerifier{issues: []domain.VerificationIssue{{Path: "src/parser.c", Message: "missing"}}}
	uc := NewVerifyArtifacts(&fakeLocator{root: "/repo"}, verifier)

	root, issues, err := uc.Execute("/repo/bindings/go")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if root != "/repo" {
		t.Errorf("root = %q, want /repo", root)
	}
	if verifier.got != "/repo" {
		t.Errorf("verifier ran on %q, want /repo", verifier.got)
	}
	if len(issues) != 1 {
		t.Errorf("len(issues) = %d, want 1", len(issues))
	}
}

func TestVerifyArtifactsLocatorFailure(t *testing.T) {
	wantErr := &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}
	uc := NewVerifyArtifacts(&fakeLocator{err: wantErr}, &fakeVerifier{})

	_, _, err := uc.Execute("/somewhere")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected locator error, got %v", err)
	}
}
