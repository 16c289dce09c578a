package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

// mapNode copies a tree-sitter node (and its subtree) into the domain model.
// All children are kept, anonymous ones included; views decide what to show.
func mapNode(n *sitter.Node) domain.Node {
	out := domain.Node{
		Kind:     n.Type(),
		Named:    n.IsNamed(),
		Missing:  n.IsMissing(),
		HasError: n.HasError(),
		Range:    mapRange(n),
	}

	count := int(n.ChildCount())
	if count > 0 {
		out.Children = make([]domain.Node, 0, count)
		for i := 0; i < count; i++ {
			out.Children = append(out.Children, mapNode(n.Child(i)))
		}
	}

	return out
}

func mapRange(n *sitter.Node) domain.Range {
	start := n.StartPoint()
	end := n.EndPoint()
	return domain.Range{
		Start:     domain.Point{Row: start.Row, Column: start.Column},
		End:       domain.Point{Row: end.Row, Column: end.Column},
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
	}
}
