package tree_sitter_luma_test

import (
	"testing"

	tree_sitter "github.com/smacker/go-tree-sitter"

	tree_sitter_luma "github.com/APConduct/tree-sitter-luma/bindings/go"
)

func TestCanLoadGrammar(t *testing.T) {
	language := tree_sitter.NewLanguage(tree_sitter_luma.Language())
	if language == nil {
		t.Errorf("Error loading Luma grammar")
	}
}

func TestParserAcceptsLanguage(t *testing.T) {
	language := tree_sitter.NewLanguage(tree_sitter_luma.Language())
	if language == nil {
		t.Fatalf("Error loading Luma grammar")
	}

	parser := tree_sitter.NewParser()
	parser.SetLanguage(language)
}
