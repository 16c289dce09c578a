package domain

// Config represents the minimal tool configuration loaded from luma.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	// Format is the default output format for parse: pretty|json|sexp.
	Format string
	// FileExt is the extension of Luma source files, with leading dot.
	FileExt string
}

type PathsConfig struct {
	ReportsDir string
	QueriesDir string
}

// DefaultConfig provides sane defaults if luma.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Format:  "pretty",
			FileExt: ".luma",
		},
		Paths: PathsConfig{
			ReportsDir: "reports",
			QueriesDir: "queries",
		},
	}
}

// WorkspaceSpec describes a grammar workspace to initialize.
type WorkspaceSpec struct {
	Root string
}
