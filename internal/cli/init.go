package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/infra/fsworkspace"
	"github.com/APConduct/tree-sitter-luma/internal/infra/workspacefinder"
)

func initCmd() *cobra.Command {
	var workspace string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold tool files (luma.yaml, queries/, reports/) in the grammar repo",
		RunE: func(_ *cobra.Command, _ []string) error {
			root := workspace
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					wd = "."
				}
				// Prefer the repo root when run from a subdirectory, but
				// fall back to the working directory for fresh setups.
				if r, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil {
					root = r
				} else {
					root = wd
				}
			}

			if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
				return err
			}

			fmt.Printf("initialized %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Directory to initialize (optional; autodetected if omitted)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing luma.yaml")

	return c
}
