package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Result captures everything a finished invocation produced.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external command. It is the only seam through which this
// package touches the operating system, so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, argv []string) (*Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes argv synchronously, capturing stdout and stderr. A non-zero
// exit status is reported through Result.ExitCode rather than as an error;
// errors are reserved for failing to launch the process at all.
func (r *ExecRunner) Run(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	//nolint:gosec // the command comes from the user's own flags and config
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	// A bare name missing from PATH yields exec.ErrNotFound; an explicit
	// path to a nonexistent file yields os.ErrNotExist.
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return nil, &BinaryNotFoundError{Binary: argv[0]}
	case errors.Is(err, os.ErrPermission):
		return nil, &BinaryNotExecutableError{Binary: argv[0]}
	default:
		return nil, fmt.Errorf("running %s: %w", argv[0], err)
	}
}
