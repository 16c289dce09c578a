package ports

import "github.com/APConduct/tree-sitter-luma/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
