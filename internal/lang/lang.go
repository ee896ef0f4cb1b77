// Package lang decides which files the external formatter understands.
package lang

import (
	"path/filepath"
	"strings"
)

// baseExtensions lists the file extensions clang-format understands,
// lowercase and without the leading dot. Fixed for the life of the process.
var baseExtensions = []string{
	"cpp", "cc", "c++", "cxx", "hpp",
	"c", "h", "inc", "cl", "m", "mm",
	"js", "ts", "proto",
}

// Filter reports whether a file's extension is formattable. The extension set
// is built once at construction and never mutated afterwards.
type Filter struct {
	extensions map[string]struct{}
}

// NewFilter returns a Filter recognising the built-in clang-format extensions
// plus any extras from configuration. Extras are lowercased and a leading dot
// is tolerated.
func NewFilter(extra []string) *Filter {
	exts := make(map[string]struct{}, len(baseExtensions)+len(extra))
	for _, e := range baseExtensions {
		exts[e] = struct{}{}
	}
	for _, e := range extra {
		e = strings.ToLower(strings.TrimPrefix(e, "."))
		if e != "" {
			exts[e] = struct{}{}
		}
	}
	return &Filter{extensions: exts}
}

// Supported reports whether the formatter understands the given file.
// Matching is case-insensitive; files without an extension are unsupported.
func (f *Filter) Supported(filename string) bool {
	ext := filepath.Ext(filepath.Base(filename))
	if ext == "" {
		return false
	}
	_, ok := f.extensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}
