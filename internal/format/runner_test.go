package format

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	r := NewExecRunner()
	ctx := context.Background()

	t.Run("captures stdout and stderr", func(t *testing.T) {
		t.Parallel()
		res, err := r.Run(ctx, []string{"sh", "-c", "echo out; echo err >&2"})
		require.NoError(t, err)
		assert.Equal(t, "out\n", res.Stdout)
		assert.Equal(t, "err\n", res.Stderr)
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("non-zero exit is reported in the result, not as an error", func(t *testing.T) {
		t.Parallel()
		res, err := r.Run(ctx, []string{"sh", "-c", "echo boom >&2; exit 3"})
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, "boom\n", res.Stderr)
	})

	t.Run("binary missing from PATH", func(t *testing.T) {
		t.Parallel()
		_, err := r.Run(ctx, []string{"grepfmt-test-no-such-binary"})
		var notFound *BinaryNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "grepfmt-test-no-such-binary", notFound.Binary)
	})

	t.Run("binary missing at explicit path", func(t *testing.T) {
		t.Parallel()
		_, err := r.Run(ctx, []string{filepath.Join(t.TempDir(), "missing")})
		var notFound *BinaryNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("binary without execute permission", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "not-executable")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644))

		_, err := r.Run(ctx, []string{path})
		var notExec *BinaryNotExecutableError
		require.ErrorAs(t, err, &notExec)
		assert.Equal(t, path, notExec.Binary)
	})

	t.Run("empty command", func(t *testing.T) {
		t.Parallel()
		_, err := r.Run(ctx, nil)
		require.Error(t, err)
	})
}
