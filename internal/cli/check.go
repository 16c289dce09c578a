package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/infra/artifactcheck"
	"github.com/APConduct/tree-sitter-luma/internal/infra/workspacefinder"
	"github.com/APConduct/tree-sitter-luma/internal/usecase"
)

func checkCmd() *cobra.Command {
	var workspace string
	var format string

	c := &cobra.Command{
		Use:   "check",
		Short: "Verify the generated grammar artifacts (src/parser.c and friends)",
		RunE: func(_ *cobra.Command, _ []string) error {
			start := workspace
			if start == "" {
				wd, err := os.Getwd()
				if err != nil {
					wd = "."
				}
				start = wd
			}

			uc := usecase.NewVerifyArtifacts(workspacefinder.NewFinder(), artifactcheck.NewVerifier())
			root, issues, err := uc.Execute(start)
			if err != nil {
				return err
			}

			if err := printIssues(os.Stdout, root, issues, format); err != nil {
				return err
			}

			if len(issues) > 0 {
				return fmt.Errorf("check failed (%d issue(s))", len(issues))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Grammar repo root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	return c
}

func printIssues(w io.Writer, root string, issues []domain.VerificationIssue, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"root":   root,
			"issues": issues,
		}
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprintf(w, "Root: %s\n", root)
		if len(issues) == 0 {
			fmt.Fprintln(w, "✓ grammar artifacts OK")
			return nil
		}
		for _, issue := range issues {
			fmt.Fprintf(w, "✗ %s — %s\n", issue.Path, issue.Message)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
