package format

import (
	"fmt"
	"strings"
)

type BinaryNotFoundError struct {
	Binary string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("formatter binary %q not found - install it or point --binary at it", e.Binary)
}

type BinaryNotExecutableError struct {
	Binary string
}

func (e *BinaryNotExecutableError) Error() string {
	return fmt.Sprintf("formatter binary %q cannot be executed: permission denied", e.Binary)
}

type ChildProcessError struct {
	Argv     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ChildProcessError) Error() string {
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Argv, " "), e.ExitCode)
}
