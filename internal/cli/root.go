package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/infra/config"
	"github.com/APConduct/tree-sitter-luma/internal/infra/logger"
	"github.com/APConduct/tree-sitter-luma/internal/infra/treesitter"
	"github.com/APConduct/tree-sitter-luma/internal/infra/workspacefinder"
	"github.com/APConduct/tree-sitter-luma/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "luma",
		Short:        "Luma grammar tool — parse, inspect and verify",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			root := wd
			cfg := domain.DefaultConfig()
			if r, ferr := finder.FindRoot(wd); ferr == nil && r != "" {
				root = r
				if c, cerr := config.Load(r); cerr == nil {
					cfg = c
				}
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			parser, err := treesitter.NewParser()
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Parser:  parser,
				Root:    root,
				FileExt: cfg.Defaults.FileExt,
				Logger:  logger.L(),
				Debug:   debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .luma/logs/luma.log")

	cmd.AddCommand(parseCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(kindsCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// resolveRoot returns the grammar repo root: the explicit flag value when
// given, otherwise an upward search from the working directory.
func resolveRoot(flagValue string) (string, error) {
	finder := workspacefinder.NewFinder()

	if flagValue != "" {
		return finder.FindRoot(flagValue)
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return finder.FindRoot(wd)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
