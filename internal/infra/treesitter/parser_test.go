package treesitter

import (
	"context"
	"testing"
)

// These tests exercise the compiled grammar artifact through the binding;
// they only assert runtime-level invariants, never Luma syntax specifics.

func TestNewParserWiring(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	if p == nil {
		t.Fatal("parser is nil")
	}
}

func TestParseEmptySource(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	root, err := p.Parse(context.Background(), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if root.Kind == "" {
		t.Error("expected a root node kind")
	}
	if root.Range.StartByte != 0 || root.Range.EndByte != 0 {
		t.Errorf("empty source root spans bytes [%d,%d), want [0,0)",
			root.Range.StartByte, root.Range.EndByte)
	}
}
