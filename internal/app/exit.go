package app

import (
	"errors"

	"github.com/grepfmt/grepfmt/internal/format"
)

// ExitCode maps a run error to the process exit status: the external
// formatter's own exit code when it ran and failed, 1 for everything else
// (malformed input, missing or unusable binary), 0 on success.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var childErr *format.ChildProcessError
	if errors.As(err, &childErr) && childErr.ExitCode > 0 {
		return childErr.ExitCode
	}
	return 1
}
