package tui

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

const parseTimeout = 10 * time.Second

// loadFilesCmd walks root for sources with ext, skipping hidden directories
// and node_modules (grammar repos carry one for tree-sitter tooling).
func loadFilesCmd(root, ext string) tea.Cmd {
	return func() tea.Msg {
		var paths []string
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if p != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.EqualFold(filepath.Ext(name), ext) {
				rel, relErr := filepath.Rel(root, p)
				if relErr != nil {
					rel = p
				}
				paths = append(paths, rel)
			}
			return nil
		})

		sort.Strings(paths)
		return filesLoadedMsg{root: root, paths: paths, err: err}
	}
}

func parseFileCmd(parser ports.Parser, root, rel string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(root, rel)

		source, err := os.ReadFile(path)
		if err != nil {
			return parseDoneMsg{path: rel, err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		node, err := parser.Parse(ctx, source)
		if err != nil {
			return parseDoneMsg{path: rel, err: err}
		}

		report := domain.NewParseReport(rel, len(source), node)
		report.ParsedAt = time.Now().UTC()
		return parseDoneMsg{path: rel, report: report}
	}
}
