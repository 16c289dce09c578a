package usecase

import (
	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

type VerifyArtifacts struct {
	locator  ports.WorkspaceLocator
	verifier ports.ArtifactVerifier
}

func NewVerifyArtifacts(locator ports.WorkspaceLocator, verifier ports.ArtifactVerifier) *VerifyArtifacts {
	return &VerifyArtifacts{locator: locator, verifier: verifier}
}

// Execute locates the grammar repo root from startDir and verifies the
// generated artifacts under it. It returns the resolved root so callers can
// report where the check ran.
func (uc *VerifyArtifacts) Execute(startDir string) (string, []domain.VerificationIssue, error) {
	root, err := uc.locator.FindRoot(startDir)
	if err != nil {
		return "", nil, err
	}

	issues, err := uc.verifier.Verify(root)
	if err != nil {
		return root, nil, err
	}

	return root, issues, nil
}
