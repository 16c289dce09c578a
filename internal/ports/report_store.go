package ports

import "github.com/APConduct/tree-sitter-luma/internal/domain"

// ReportStore persists parse reports for later inspection.
type ReportStore interface {
	SaveReport(report domain.ParseReport) (id string, err error)
}
