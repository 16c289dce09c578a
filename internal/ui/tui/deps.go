package tui

import (
	"log/slog"

	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

// Deps carries everything the explorer needs; the CLI wires concrete infra.
type Deps struct {
	Parser  ports.Parser
	Root    string
	FileExt string
	Logger  *slog.Logger
	Debug   bool
}
