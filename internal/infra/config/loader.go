package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

const ConfigFile = "luma.yaml"

// Load reads <root>/luma.yaml. The file is optional: when absent the
// defaults apply unchanged.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, ConfigFile)

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
