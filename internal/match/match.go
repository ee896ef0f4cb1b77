// Package match parses grep-style search output into per-file edit requests.
package match

// EditRequest maps each file named in the search output to the line numbers
// that need reformatting. Files keep their first-seen order and each file's
// line numbers keep their encounter order, duplicates included.
type EditRequest struct {
	files []string
	lines map[string][]int
}

// NewEditRequest returns an empty EditRequest.
func NewEditRequest() *EditRequest {
	return &EditRequest{lines: make(map[string][]int)}
}

// Add records that line of file needs reformatting.
func (r *EditRequest) Add(file string, line int) {
	if _, ok := r.lines[file]; !ok {
		r.files = append(r.files, file)
	}
	r.lines[file] = append(r.lines[file], line)
}

// Files returns the file paths in first-seen order.
func (r *EditRequest) Files() []string {
	return r.files
}

// Lines returns the line numbers recorded for file, in encounter order.
func (r *EditRequest) Lines(file string) []int {
	return r.lines[file]
}

// Len returns the number of distinct files in the request.
func (r *EditRequest) Len() int {
	return len(r.files)
}
