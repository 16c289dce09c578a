package ports

import "github.com/APConduct/tree-sitter-luma/internal/domain"

// ArtifactVerifier checks the generated grammar artifacts under a repository
// root for presence and consistency.
type ArtifactVerifier interface {
	Verify(root string) ([]domain.VerificationIssue, error)
}
