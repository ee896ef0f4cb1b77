package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grepfmt/grepfmt/internal/config"
	"github.com/grepfmt/grepfmt/internal/format"
	"github.com/grepfmt/grepfmt/internal/fs"
	"github.com/grepfmt/grepfmt/internal/lang"
	"github.com/grepfmt/grepfmt/internal/report"
)

// Version is the current version of grepfmt, set at build time.
var Version = "dev"

var LongDescription = `
grepfmt reads search matches from stdin and reformats only the matched lines,
in place, using clang-format. Pipe in line-numbered search output:

  grep -rn 'TODO' src/ | grepfmt
  rg -n 'memcpy' | grepfmt --style=file
  rg --json 'memcpy' | grepfmt --json

Each input line must look like <file>:<line>:<text>. Matches are grouped by
file and clang-format is invoked once per file with one --lines=N:N range per
match, so only the matched lines are touched. Files clang-format does not
understand are skipped.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(ll *slog.LevelVar, stderr io.Writer, env fs.EnvProvider) *cobra.Command {
	var verbose bool
	var dryRun bool
	var jsonInput bool
	var noColour bool
	var binary string
	var style string
	outputVal := formatValue("text")

	rootCmd := &cobra.Command{
		Use:           "grepfmt",
		Short:         "Reformat only the lines matched by a code search",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				ll.Set(slog.LevelDebug)
			}

			logger, logCloser, err := setupLogger(stderr, ll, env)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			if logCloser != nil {
				defer logCloser.Close()
			}

			cfg, err := loadConfig(env)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("style") {
				style = cfg.Style
			}
			var opts []format.Option
			if style != "" {
				opts = append(opts, format.WithStyle(style))
			}
			if dryRun {
				opts = append(opts, format.WithDryRun())
			}

			formatter := format.NewClangFormatter(resolveBinary(cmd, binary, env, cfg), logger, opts...)
			mgr := NewManager(logger, lang.NewFilter(cfg.Extensions), formatter)

			summary, err := mgr.FormatMatches(cmd.Context(), cmd.InOrStdin(), jsonInput)
			if err != nil {
				return err
			}

			return writeSummary(cmd.OutOrStdout(), summary, string(outputVal), verbose, !noColour)
		},
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report progress per file")
	rootCmd.Flags().StringVar(&binary, "binary", format.DefaultBinary, "Formatter executable name or path")
	rootCmd.Flags().StringVar(&style, "style", "", "Value passed to the formatter as --style")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Ask the formatter to report violations instead of rewriting files")
	rootCmd.Flags().BoolVar(&jsonInput, "json", false, "Read a ripgrep --json event stream instead of file:line:text matches")
	rootCmd.Flags().VarP(&outputVal, "output", "o", "Run summary format (text, json)")

	rootCmd.Flags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spelling
	rootCmd.Flags().BoolVar(&noColour, "nocolor", false, "")
	_ = rootCmd.Flags().MarkHidden("nocolor")

	return rootCmd
}

// loadConfig reads the config file named by GREPFMT_CONFIG, or the default
// .grepfmt.yml which may be absent.
func loadConfig(env fs.EnvProvider) (*config.Config, error) {
	if path := env.Get(config.ConfigEnvVar); path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// resolveBinary applies flag > environment > config file > default precedence.
func resolveBinary(cmd *cobra.Command, flagVal string, env fs.EnvProvider, cfg *config.Config) string {
	if cmd.Flags().Changed("binary") {
		return flagVal
	}
	if v := env.Get(config.BinaryEnvVar); v != "" {
		return v
	}
	if cfg.Binary != "" {
		return cfg.Binary
	}
	return flagVal
}

// writeSummary renders the run summary. The JSON summary is always written;
// the text summary only appears in verbose mode.
func writeSummary(w io.Writer, summary *report.Summary, output string, verbose, useColour bool) error {
	if output == "json" {
		jr := &report.JSONReporter{}
		return jr.Write(w, summary)
	}
	if !verbose {
		return nil
	}
	tr := &report.TextReporter{UseColour: useColour}
	return tr.Write(w, summary)
}
