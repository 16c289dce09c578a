package usecase

import (
	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

type ListKinds struct {
	catalog ports.KindCatalog
}

func NewListKinds(catalog ports.KindCatalog) *ListKinds {
	return &ListKinds{catalog: catalog}
}

// Execute returns the grammar's node kinds, optionally restricted to named
// rules. Ordering is whatever the catalog provides (sorted by type).
func (uc *ListKinds) Execute(namedOnly bool) ([]domain.NodeKindInfo, error) {
	kinds, err := uc.catalog.Kinds()
	if err != nil {
		return nil, err
	}

	if !namedOnly {
		return kinds, nil
	}

	out := make([]domain.NodeKindInfo, 0, len(kinds))
	for _, k := range kinds {
		if k.Named {
			out = append(out, k)
		}
	}
	return out, nil
}
