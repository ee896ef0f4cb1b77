package match

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// ParseJSON reads a ripgrep --json event stream from r and groups the match
// events by file. Begin, end, context and summary events carry no match
// position and are skipped. Like Parse, the stream is consumed in full before
// anything is returned.
func ParseJSON(r io.Reader) (*EditRequest, error) {
	req := NewEditRequest()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		raw := scanner.Text()
		if !gjson.Valid(raw) {
			return nil, &SyntaxError{Line: raw}
		}

		event := gjson.Parse(raw)
		if event.Get("type").String() != "match" {
			continue
		}

		path := event.Get("data.path.text")
		line := event.Get("data.line_number")
		if path.String() == "" || line.Int() < 1 {
			return nil, &SyntaxError{Line: raw}
		}

		req.Add(path.String(), int(line.Int()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading matches: %w", err)
	}

	return req, nil
}
