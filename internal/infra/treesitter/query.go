package treesitter

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

// Query runs a user-supplied tree-sitter query over source and returns the
// captures in match order. Query compilation errors surface as
// invalid_config: the .scm file, not the source, is at fault.
func (p *Parser) Query(ctx context.Context, source []byte, query []byte) ([]domain.QueryMatch, error) {
	q, err := sitter.NewQuery(query, p.lang)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "treesitter.query.compile",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	defer q.Close()

	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "treesitter.query.parse",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, tree.RootNode())

	var out []domain.QueryMatch
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, source)

		for _, c := range m.Captures {
			out = append(out, domain.QueryMatch{
				Capture: q.CaptureNameForId(c.Index),
				Kind:    c.Node.Type(),
				Range:   mapRange(c.Node),
				Text:    c.Node.Content(source),
			})
		}
	}

	return out, nil
}
