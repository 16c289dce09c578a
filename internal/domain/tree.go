package domain

import "strings"

// Point is a zero-based row/column position in source text.
type Point struct {
	Row    uint32 `json:"row"`
	Column uint32 `json:"column"`
}

// Range spans a region of source text in both point and byte coordinates.
type Range struct {
	Start     Point  `json:"start"`
	End       Point  `json:"end"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

// Node is a detached snapshot of one syntax-tree node. It owns its children,
// so a Node remains valid after the runtime tree it was mapped from is
// released.
type Node struct {
	Kind     string `json:"kind"`
	Named    bool   `json:"named,omitempty"`
	Missing  bool   `json:"missing,omitempty"`
	HasError bool   `json:"has_error,omitempty"`
	Range    Range  `json:"range"`
	Children []Node `json:"children,omitempty"`
}

// IsError reports whether the node is an ERROR node produced by error
// recovery (as opposed to merely containing one somewhere below).
func (n Node) IsError() bool {
	return n.Kind == "ERROR"
}

// FlatNode is one row of a pre-order flattening, used by list-style views.
type FlatNode struct {
	Node  Node
	Depth int
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(n Node, depth int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Flatten returns the pre-order flattening of the tree rooted at n.
func Flatten(n Node) []FlatNode {
	var out []FlatNode
	Walk(n, func(c Node, depth int) bool {
		out = append(out, FlatNode{Node: c, Depth: depth})
		return true
	})
	return out
}

// Count returns the total number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node, int) bool {
		total++
		return true
	})
	return total
}

// CountKinds tallies how often each node kind occurs under n (inclusive).
func CountKinds(n Node) map[string]int {
	out := map[string]int{}
	Walk(n, func(c Node, _ int) bool {
		out[c.Kind]++
		return true
	})
	return out
}

// ErrorCount counts ERROR and MISSING nodes under n (inclusive).
func ErrorCount(n Node) int {
	total := 0
	Walk(n, func(c Node, _ int) bool {
		if c.IsError() || c.Missing {
			total++
		}
		return true
	})
	return total
}

// Sexp renders the named structure of the tree rooted at n as an
// s-expression, the conventional compact form for syntax trees. Anonymous
// nodes are omitted; a leaf renders as (kind).
func Sexp(n Node) string {
	var b strings.Builder
	writeSexp(&b, n)
	return b.String()
}

func writeSexp(b *strings.Builder, n Node) {
	b.WriteByte('(')
	if n.Missing {
		b.WriteString("MISSING ")
	}
	b.WriteString(n.Kind)
	for _, c := range n.Children {
		if !c.Named {
			continue
		}
		b.WriteByte(' ')
		writeSexp(b, c)
	}
	b.WriteByte(')')
}
