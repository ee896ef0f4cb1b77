package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/grepfmt/grepfmt/internal/lang"
	"github.com/grepfmt/grepfmt/internal/match"
	"github.com/grepfmt/grepfmt/internal/report"
)

// Formatter reformats the given lines of one file in place.
type Formatter interface {
	Format(ctx context.Context, file string, lines []int) error
}

// Manager runs the grepfmt pipeline: parse all matches up front, then filter
// and format file by file.
type Manager struct {
	logger    *slog.Logger
	filter    *lang.Filter
	formatter Formatter
}

// NewManager wires the pipeline together.
func NewManager(logger *slog.Logger, filter *lang.Filter, formatter Formatter) *Manager {
	return &Manager{logger: logger, filter: filter, formatter: formatter}
}

// FormatMatches parses every match from r, then formats each file in input
// order. Parsing completes before the first invocation, so malformed input
// never reaches the formatter. Files run strictly one at a time; unsupported
// files are skipped, and the first formatter failure aborts the run with
// later files untouched.
func (m *Manager) FormatMatches(ctx context.Context, r io.Reader, jsonInput bool) (*report.Summary, error) {
	parse := match.Parse
	if jsonInput {
		parse = match.ParseJSON
	}
	req, err := parse(r)
	if err != nil {
		return nil, err
	}

	summary := &report.Summary{StartTime: time.Now()}
	for _, file := range req.Files() {
		if !m.filter.Supported(file) {
			m.logger.Debug(fmt.Sprintf("skipping %s: unsupported file type", file))
			summary.Skipped = append(summary.Skipped, file)
			continue
		}

		lines := req.Lines(file)
		if err := m.formatter.Format(ctx, file, lines); err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, report.FileSummary{Path: file, Lines: len(lines)})
	}
	summary.EndTime = time.Now()

	return summary, nil
}
