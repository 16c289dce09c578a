package config

type YAMLConfig struct {
	Defaults YAMLDefaults `yaml:"defaults"`
	Paths    YAMLPaths    `yaml:"paths"`
}

type YAMLDefaults struct {
	Format  string `yaml:"format"`
	FileExt string `yaml:"file_ext"`
}

type YAMLPaths struct {
	ReportsDir string `yaml:"reports_dir"`
	QueriesDir string `yaml:"queries_dir"`
}
