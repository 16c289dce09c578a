package usecase

import (
	"context"
	"os"
	"time"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
	"github.com/APConduct/tree-sitter-luma/internal/ports"
)

type ParseFile struct {
	parser ports.Parser
	store  ports.ReportStore
	now    func() time.Time
}

type ParseFileOption func(*ParseFile)

// WithClock is useful for tests.
func WithClock(now func() time.Time) ParseFileOption {
	return func(uc *ParseFile) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewParseFile builds the usecase. store may be nil, in which case the
// report is returned but not persisted.
func NewParseFile(p ports.Parser, store ports.ReportStore, opts ...ParseFileOption) *ParseFile {
	uc := &ParseFile{
		parser: p,
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads path, parses it with the compiled grammar, and builds a
// report. The returned id is empty when no store is configured.
func (uc *ParseFile) Execute(ctx context.Context, path string) (domain.ParseReport, string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return domain.ParseReport{}, "", &domain.OpError{
			Op:   "parsefile.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	started := uc.now()
	root, err := uc.parser.Parse(ctx, source)
	if err != nil {
		return domain.ParseReport{}, "", err
	}

	report := domain.NewParseReport(path, len(source), root)
	report.DurationMS = uc.now().Sub(started).Milliseconds()
	report.ParsedAt = started.UTC()

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		// The parse itself succeeded; hand the report back with the error.
		return report, "", err
	}

	return report, id, nil
}
