package ports

import (
	"context"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

// Parser turns Luma source text into a detached syntax-tree snapshot.
// The concrete implementation (tree-sitter over the compiled grammar) lives
// in internal/infra/treesitter.
type Parser interface {
	Parse(ctx context.Context, source []byte) (domain.Node, error)
}

// QueryRunner executes a tree-sitter query (.scm source) against Luma source
// text and returns the captures in document order.
type QueryRunner interface {
	Query(ctx context.Context, source []byte, query []byte) ([]domain.QueryMatch, error)
}
