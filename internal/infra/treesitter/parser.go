// Package treesitter adapts the tree-sitter runtime and the compiled Luma
// grammar to the ports.Parser and ports.QueryRunner interfaces.
package treesitter

import (
	"context"
	"errors"

	sitter "github.com/smacker/go-tree-sitter"

	tree_sitter_luma "github.com/APConduct/tree-sitter-luma/bindings/go"
	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

type Parser struct {
	lang   *sitter.Language
	parser *sitter.Parser
}

// NewParser binds a fresh tree-sitter parser to the compiled Luma grammar.
func NewParser() (*Parser, error) {
	lang := sitter.NewLanguage(tree_sitter_luma.Language())
	if lang == nil {
		return nil, &domain.OpError{
			Op:   "treesitter.new",
			Kind: domain.KindNoGrammar,
			Err:  errors.New("grammar handle is nil"),
		}
	}

	p := sitter.NewParser()
	p.SetLanguage(lang)

	return &Parser{lang: lang, parser: p}, nil
}

var _ ports.Parser = (*Parser)(nil)
var _ ports.QueryRunner = (*Parser)(nil)

// Parse produces a detached snapshot of the syntax tree for source. The
// underlying tree-sitter tree is released before returning.
func (p *Parser) Parse(ctx context.Context, source []byte) (domain.Node, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return domain.Node{}, &domain.OpError{
			Op:   "treesitter.parse",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	defer tree.Close()

	return mapNode(tree.RootNode()), nil
}
