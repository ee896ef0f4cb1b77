package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

type jsonFile struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

type jsonOutput struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Stats     struct {
		TotalFiles int `json:"totalFiles"`
		TotalLines int `json:"totalLines"`
		Skipped    int `json:"skipped"`
	} `json:"stats"`
	Files   []jsonFile `json:"files"`
	Skipped []string   `json:"skipped,omitempty"`
}

func (jr *JSONReporter) Write(w io.Writer, s *Summary) error {
	out := jsonOutput{
		StartTime: s.StartTime.Format(time.RFC3339),
		EndTime:   s.EndTime.Format(time.RFC3339),
		Duration:  s.EndTime.Sub(s.StartTime).String(),
		Files:     make([]jsonFile, 0, len(s.Files)),
		Skipped:   s.Skipped,
	}
	for _, f := range s.Files {
		out.Files = append(out.Files, jsonFile{Path: f.Path, Lines: f.Lines})
	}
	out.Stats.TotalFiles = len(s.Files)
	out.Stats.TotalLines = s.TotalLines()
	out.Stats.Skipped = len(s.Skipped)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
