package report

import (
	"fmt"
	"io"
	"time"
)

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	UseColour bool
}

const (
	colReset = "\033[0m"
	colGreen = "\033[32m"
	colGrey  = "\033[90m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, s *Summary) error {
	for _, f := range s.Files {
		noun := "lines"
		if f.Lines == 1 {
			noun = "line"
		}
		fmt.Fprintf(w, "%s %s\n", tr.cs(colGreen, f.Path), tr.cs(colGrey, fmt.Sprintf("(%d %s)", f.Lines, noun)))
	}
	for _, f := range s.Skipped {
		fmt.Fprintf(w, "%s %s\n", f, tr.cs(colGrey, "(skipped: unsupported file type)"))
	}

	fmt.Fprintf(w, "formatted %d lines in %d files in %s\n",
		s.TotalLines(), len(s.Files), s.EndTime.Sub(s.StartTime).Round(time.Millisecond))
	return nil
}
