package config

import (
	"fmt"
	"strings"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

// MapConfig merges the DTO over the defaults and validates the result.
func MapConfig(path string, dto YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v := strings.TrimSpace(dto.Defaults.Format); v != "" {
		cfg.Defaults.Format = v
	}
	if v := strings.TrimSpace(dto.Defaults.FileExt); v != "" {
		cfg.Defaults.FileExt = v
	}
	if v := strings.TrimSpace(dto.Paths.ReportsDir); v != "" {
		cfg.Paths.ReportsDir = v
	}
	if v := strings.TrimSpace(dto.Paths.QueriesDir); v != "" {
		cfg.Paths.QueriesDir = v
	}

	switch cfg.Defaults.Format {
	case "pretty", "json", "sexp":
	default:
		return domain.Config{}, &domain.OpError{
			Op:   "config.map",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("defaults.format %q (expected pretty|json|sexp)", cfg.Defaults.Format),
		}
	}

	if !strings.HasPrefix(cfg.Defaults.FileExt, ".") {
		return domain.Config{}, &domain.OpError{
			Op:   "config.map",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("defaults.file_ext %q must start with a dot", cfg.Defaults.FileExt),
		}
	}

	return cfg, nil
}
