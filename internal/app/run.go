package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/grepfmt/grepfmt/internal/format"
	"github.com/grepfmt/grepfmt/internal/fs"
)

// Run builds the CLI and executes it against the given arguments and streams.
// Errors are printed to stderr here (the command silences its own) and also
// returned so main can map them to an exit status.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, env fs.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	if env == nil {
		env = fs.NewEnvProvider()
	}

	rootCmd := NewRootCmd(logLevel, stderr, env)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// The external tool's own diagnostics are the source of truth when it
		// rejected the input, so surface its stderr verbatim first.
		var childErr *format.ChildProcessError
		if errors.As(err, &childErr) && childErr.Stderr != "" {
			fmt.Fprint(stderr, childErr.Stderr)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
