package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/infra/config"
	"github.com/APConduct/tree-sitter-luma/internal/infra/reportstore"
	"github.com/APConduct/tree-sitter-luma/internal/infra/treesitter"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
	"github.com/APConduct/tree-sitter-luma/internal/usecase"
	ucextract "github.com/APConduct/tree-sitter-luma/internal/usecase/extract"
)

func parseCmd() *cobra.Command {
	var workspace string
	var format string
	var save bool
	var extracts []string
	var queryPath string

	c := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Luma source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			if !fileExists(file) {
				return &domain.OpError{
					Op:   "cli.parse",
					Kind: domain.KindNotFound,
					Path: file,
					Err:  fmt.Errorf("no such file"),
				}
			}

			rules, err := parseExtractRules(extracts)
			if err != nil {
				return err
			}

			// The workspace is optional: without one there is nowhere to
			// save reports, and the config defaults apply.
			cfg := domain.DefaultConfig()
			root, rootErr := resolveRoot(workspace)
			if rootErr == nil {
				loaded, cerr := config.Load(root)
				if cerr != nil {
					return cerr
				}
				cfg = loaded
			} else if workspace != "" || save {
				return rootErr
			}

			if format == "" {
				format = cfg.Defaults.Format
			}

			parser, err := treesitter.NewParser()
			if err != nil {
				return err
			}

			var store ports.ReportStore
			if save {
				store = reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))
			}

			uc := usecase.NewParseFile(parser, store)
			report, id, err := uc.Execute(cmd.Context(), file)
			if err != nil {
				return err
			}

			if err := printReport(os.Stdout, report, id, format); err != nil {
				return err
			}

			if len(rules) > 0 {
				vars, results := ucextract.Apply(report.Root, rules)
				printExtracts(os.Stdout, vars, results)
				for _, r := range results {
					if !r.Success {
						return fmt.Errorf("extract failed (%s)", r.Name)
					}
				}
			}

			if queryPath != "" {
				if err := runQuery(cmd, os.Stdout, parser, file, queryPath); err != nil {
					return err
				}
			}

			if report.ErrorCount > 0 {
				return fmt.Errorf("parse found %d error node(s)", report.ErrorCount)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Grammar repo root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|sexp (default from luma.yaml)")
	c.Flags().BoolVar(&save, "save", false, "Save a parse report under reports/")
	c.Flags().StringArrayVar(&extracts, "extract", nil, "JSONPath extraction rule name=expr (repeatable)")
	c.Flags().StringVar(&queryPath, "query", "", "Run a tree-sitter query file (.scm) against the source")

	return c
}

func runQuery(cmd *cobra.Command, w io.Writer, runner ports.QueryRunner, file, queryPath string) error {
	source, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	query, err := os.ReadFile(queryPath)
	if err != nil {
		return &domain.OpError{
			Op:   "cli.query",
			Kind: domain.KindNotFound,
			Path: queryPath,
			Err:  err,
		}
	}

	matches, err := runner.Query(cmd.Context(), source, query)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "query: %d capture(s)\n", len(matches))
	for _, m := range matches {
		fmt.Fprintf(w, "  @%s %s %s %q\n", m.Capture, m.Kind, formatRange(m.Range), m.Text)
	}
	return nil
}

func printReport(w io.Writer, report domain.ParseReport, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include the report id (optional) as a wrapper to avoid changing
		// the persisted artifact shape.
		payload := map[string]any{
			"report_id": id,
			"report":    report,
		}
		return enc.Encode(payload)
	case "sexp":
		fmt.Fprintln(w, domain.Sexp(report.Root))
		return nil
	case "pretty", "":
		printPrettyReport(w, report, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|sexp)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.ParseReport, id string) {
	fmt.Fprintf(w, "File:     %s\n", report.File)
	fmt.Fprintf(w, "Root:     %s\n", report.RootKind)
	fmt.Fprintf(w, "Nodes:    %d\n", report.NodeCount)
	fmt.Fprintf(w, "Errors:   %d\n", report.ErrorCount)
	fmt.Fprintf(w, "Parsed:   %s (%dms)\n", report.ParsedAt.Format(time.RFC3339), report.DurationMS)
	if id != "" {
		fmt.Fprintf(w, "Report:   %s\n", id)
	}
	fmt.Fprintln(w)

	for _, f := range domain.Flatten(report.Root) {
		fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", f.Depth), nodeLabel(f.Node), formatRange(f.Node.Range))
	}
}

func nodeLabel(n domain.Node) string {
	label := n.Kind
	if !n.Named {
		label = fmt.Sprintf("%q", n.Kind)
	}
	if n.Missing {
		label = "MISSING " + label
	}
	return label
}

func formatRange(r domain.Range) string {
	return fmt.Sprintf("[%d:%d - %d:%d]", r.Start.Row, r.Start.Column, r.End.Row, r.End.Column)
}

func printExtracts(w io.Writer, vars map[string]string, results []domain.ExtractResult) {
	fmt.Fprintln(w)
	ok, bad := 0, 0
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			bad++
		}
	}
	fmt.Fprintf(w, "extracts: %d ok / %d fail\n", ok, bad)
	for _, r := range results {
		mark := "✓"
		if !r.Success {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s %s — %s\n", mark, r.Name, r.Message)
	}
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(w, "  %s = %s\n", r.Name, vars[r.Name])
		}
	}
}

// parseExtractRules turns repeated name=expr flags into a rule map.
func parseExtractRules(in []string) (map[string]string, error) {
	if len(in) == 0 {
		return nil, nil
	}

	rules := make(map[string]string, len(in))
	for _, raw := range in {
		name, expr, found := strings.Cut(raw, "=")
		name = strings.TrimSpace(name)
		expr = strings.TrimSpace(expr)
		if !found || name == "" || expr == "" {
			return nil, fmt.Errorf("invalid --extract %q (expected name=jsonpath)", raw)
		}
		if _, dup := rules[name]; dup {
			return nil, fmt.Errorf("duplicate --extract name %q", name)
		}
		rules[name] = expr
	}
	return rules, nil
}
