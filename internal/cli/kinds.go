package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/infra/nodetypes"
	"github.com/APConduct/tree-sitter-luma/internal/usecase"
)

func kindsCmd() *cobra.Command {
	var workspace string
	var namedOnly bool
	var format string

	c := &cobra.Command{
		Use:   "kinds",
		Short: "List the node kinds the grammar can produce",
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := resolveRoot(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewListKinds(nodetypes.NewCatalog(root))
			kinds, err := uc.Execute(namedOnly)
			if err != nil {
				return err
			}

			return printKinds(os.Stdout, kinds, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Grammar repo root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&namedOnly, "named-only", false, "Only list named rules")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	return c
}

func printKinds(w io.Writer, kinds []domain.NodeKindInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(kinds)
	case "pretty", "":
		for _, k := range kinds {
			label := k.Type
			if !k.Named {
				label = fmt.Sprintf("%q", k.Type)
			}
			fmt.Fprintln(w, label)
		}
		fmt.Fprintf(w, "\n%d kind(s)\n", len(kinds))
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
