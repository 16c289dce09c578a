package ports

import "github.com/APConduct/tree-sitter-luma/internal/domain"

// KindCatalog enumerates the node kinds the grammar can produce, read from
// the generated metadata (node-types.json).
type KindCatalog interface {
	Kinds() ([]domain.NodeKindInfo, error)
}
