package app

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grepfmt/grepfmt/internal/format"
	"github.com/grepfmt/grepfmt/internal/lang"
	"github.com/grepfmt/grepfmt/internal/match"
)

type formatCall struct {
	file  string
	lines []int
}

// fakeFormatter records calls and can fail on a chosen file.
type fakeFormatter struct {
	calls  []formatCall
	failOn string
	err    error
}

func (f *fakeFormatter) Format(_ context.Context, file string, lines []int) error {
	f.calls = append(f.calls, formatCall{file: file, lines: slices.Clone(lines)})
	if file == f.failOn {
		return f.err
	}
	return nil
}

func testManager(ff *fakeFormatter) *Manager {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(logger, lang.NewFilter(nil), ff)
}

func TestManager_FormatMatches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("formats files in input order", func(t *testing.T) {
		t.Parallel()
		ff := &fakeFormatter{}
		input := "b.cc:1:x\na.cpp:2:y\nb.cc:9:z\n"

		summary, err := testManager(ff).FormatMatches(ctx, strings.NewReader(input), false)
		require.NoError(t, err)
		require.Len(t, ff.calls, 2)
		assert.Equal(t, formatCall{file: "b.cc", lines: []int{1, 9}}, ff.calls[0])
		assert.Equal(t, formatCall{file: "a.cpp", lines: []int{2}}, ff.calls[1])
		assert.Equal(t, 3, summary.TotalLines())
	})

	t.Run("skips unsupported files without error", func(t *testing.T) {
		t.Parallel()
		ff := &fakeFormatter{}
		input := "notes.py:3:x\nf.cpp:1:y\nREADME:2:z\n"

		summary, err := testManager(ff).FormatMatches(ctx, strings.NewReader(input), false)
		require.NoError(t, err)
		require.Len(t, ff.calls, 1)
		assert.Equal(t, "f.cpp", ff.calls[0].file)
		assert.Equal(t, []string{"notes.py", "README"}, summary.Skipped)
	})

	t.Run("malformed input never reaches the formatter", func(t *testing.T) {
		t.Parallel()
		ff := &fakeFormatter{}
		input := "good.c:1:x\nbad.c:notanumber:y\n"

		_, err := testManager(ff).FormatMatches(ctx, strings.NewReader(input), false)
		var syntaxErr *match.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Empty(t, ff.calls)
	})

	t.Run("first formatter failure aborts the run", func(t *testing.T) {
		t.Parallel()
		want := &format.ChildProcessError{Argv: []string{"clang-format"}, ExitCode: 2, Stderr: "boom"}
		ff := &fakeFormatter{failOn: "a.cpp", err: want}
		input := "a.cpp:1:x\nb.cc:2:y\n"

		_, err := testManager(ff).FormatMatches(ctx, strings.NewReader(input), false)
		var childErr *format.ChildProcessError
		require.ErrorAs(t, err, &childErr)
		assert.Equal(t, 2, childErr.ExitCode)
		// b.cc was never attempted
		require.Len(t, ff.calls, 1)
		assert.Equal(t, "a.cpp", ff.calls[0].file)
	})

	t.Run("json input mode", func(t *testing.T) {
		t.Parallel()
		ff := &fakeFormatter{}
		input := `{"type":"match","data":{"path":{"text":"f.cpp"},"line_number":12}}` + "\n"

		_, err := testManager(ff).FormatMatches(ctx, strings.NewReader(input), true)
		require.NoError(t, err)
		require.Len(t, ff.calls, 1)
		assert.Equal(t, formatCall{file: "f.cpp", lines: []int{12}}, ff.calls[0])
	})
}
