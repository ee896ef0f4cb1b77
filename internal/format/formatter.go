// Package format drives the external clang-format binary over selected lines.
package format

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultBinary is the formatter executable used when none is configured.
const DefaultBinary = "clang-format"

// ClangFormatter rewrites individual lines of a file in place by invoking
// clang-format with one --lines=N:N range argument per requested line.
type ClangFormatter struct {
	binary string
	style  string
	dryRun bool
	runner Runner
	logger *slog.Logger
}

// Option configures a ClangFormatter.
type Option func(*ClangFormatter)

// WithStyle passes a --style argument through to clang-format.
func WithStyle(style string) Option {
	return func(f *ClangFormatter) { f.style = style }
}

// WithDryRun swaps the in-place flag for clang-format's --dry-run mode, which
// reports violations on stderr without touching the file.
func WithDryRun() Option {
	return func(f *ClangFormatter) { f.dryRun = true }
}

// WithRunner substitutes the process runner, for tests.
func WithRunner(r Runner) Option {
	return func(f *ClangFormatter) { f.runner = r }
}

// NewClangFormatter creates a formatter invoking the given binary. An empty
// binary falls back to DefaultBinary.
func NewClangFormatter(binary string, logger *slog.Logger, opts ...Option) *ClangFormatter {
	if binary == "" {
		binary = DefaultBinary
	}
	f := &ClangFormatter{
		binary: binary,
		runner: NewExecRunner(),
		logger: logger,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Format reformats exactly the given lines of file, in place. One range
// argument is issued per entry in lines, duplicates included, so the
// invocation mirrors the raw match list. The call blocks until the external
// process finishes; its exit code and stderr are preserved on failure.
func (f *ClangFormatter) Format(ctx context.Context, file string, lines []int) error {
	argv := f.argv(file, lines)
	f.logger.Debug(fmt.Sprintf("formatting %s", file), "lines", len(lines))

	res, err := f.runner.Run(ctx, argv)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ChildProcessError{
			Argv:     argv,
			ExitCode: res.ExitCode,
			Stdout:   res.Stdout,
			Stderr:   res.Stderr,
		}
	}
	return nil
}

func (f *ClangFormatter) argv(file string, lines []int) []string {
	argv := make([]string, 0, len(lines)+4)
	argv = append(argv, f.binary)
	if f.style != "" {
		argv = append(argv, "--style="+f.style)
	}
	if f.dryRun {
		argv = append(argv, "--dry-run")
	} else {
		argv = append(argv, "-i")
	}
	for _, n := range lines {
		argv = append(argv, fmt.Sprintf("--lines=%d:%d", n, n))
	}
	return append(argv, file)
}
