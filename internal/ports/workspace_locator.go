package ports

// WorkspaceLocator finds the grammar repository root starting from an
// arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
