package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

// Finder locates the grammar repository root by searching upward for one of
// the marker files a tree-sitter grammar repo carries at its root.
type Finder struct {
	Markers []string
}

func NewFinder() *Finder {
	return &Finder{Markers: []string{"grammar.js", "tree-sitter.json"}}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		for _, marker := range f.Markers {
			if _, err := os.Stat(filepath.Join(cur, marker)); err == nil {
				return cur, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  errors.New("no grammar.js or tree-sitter.json found upward"),
			}
		}
		cur = parent
	}
}
