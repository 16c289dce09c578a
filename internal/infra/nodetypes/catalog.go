// Package nodetypes reads the generated node-types.json into the domain's
// kind catalog.
package nodetypes

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

type Catalog struct {
	path string
}

// NewCatalog points the catalog at <root>/src/node-types.json.
func NewCatalog(root string) *Catalog {
	return &Catalog{path: filepath.Join(root, "src", "node-types.json")}
}

var _ ports.KindCatalog = (*Catalog)(nil)

func (c *Catalog) Kinds() ([]domain.NodeKindInfo, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "nodetypes.read",
			Kind: domain.KindNotFound,
			Path: c.path,
			Err:  err,
		}
	}

	var kinds []domain.NodeKindInfo
	if err := json.Unmarshal(b, &kinds); err != nil {
		return nil, &domain.OpError{
			Op:   "nodetypes.parse",
			Kind: domain.KindInvalidConfig,
			Path: c.path,
			Err:  err,
		}
	}

	// node-types.json lists subtypes of supertypes as separate entries;
	// dedupe on type+named before presenting.
	seen := map[domain.NodeKindInfo]bool{}
	out := kinds[:0]
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}
