package match

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineBytes = 1024 * 1024

// Parse reads grep-style matches (<file>:<line>:<text>) from r until EOF and
// groups them by file. The whole input is consumed before anything is
// returned, so a malformed line anywhere rejects the entire batch and nothing
// downstream runs. Blank lines are malformed too.
func Parse(r io.Reader) (*EditRequest, error) {
	req := NewEditRequest()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		file, line, err := parseLine(scanner.Text())
		if err != nil {
			return nil, err
		}
		req.Add(file, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading matches: %w", err)
	}

	return req, nil
}

// parseLine splits one match into its file and line number. The matched text
// may itself contain colons, so only the first two fields are inspected.
func parseLine(raw string) (string, int, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 3 || parts[0] == "" || !isDigits(parts[1]) {
		return "", 0, &SyntaxError{Line: raw}
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 {
		return "", 0, &SyntaxError{Line: raw}
	}

	return parts[0], n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
