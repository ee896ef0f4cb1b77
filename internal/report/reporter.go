// Package report renders the outcome of a grepfmt run.
package report

import (
	"io"
	"time"
)

// FileSummary records one formatted file and how many line ranges were sent
// to the formatter for it.
type FileSummary struct {
	Path  string
	Lines int
}

// Summary accumulates what a run did: which files were formatted, which were
// skipped as unsupported, and when the run started and finished.
type Summary struct {
	Files     []FileSummary
	Skipped   []string
	StartTime time.Time
	EndTime   time.Time
}

// TotalLines returns the number of line ranges issued across all files.
func (s *Summary) TotalLines() int {
	total := 0
	for _, f := range s.Files {
		total += f.Lines
	}
	return total
}

// Reporter renders a Summary to a writer.
type Reporter interface {
	Write(w io.Writer, s *Summary) error
}
