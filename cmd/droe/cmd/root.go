package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/droe-lang/droe-sub001/internal/diagnostics"
)

var (
	verbose bool
	quiet   bool
	logger  *log.Logger
)

// errProblems signals a nonzero exit after diagnostics were already
// printed.
var errProblems = errors.New("problems found")

var rootCmd = &cobra.Command{
	Use:   "droe",
	Short: "Compiler front end for the droe language",
	Long: `droe parses, resolves and checks .droe source files.

Commands:
  check    - parse and type-check files, reporting diagnostics
  parse    - print a file's syntax tree as JSON
  build    - compile a file for a code generation target
  version  - show version information`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress logging entirely")
}

func newLogger() *log.Logger {
	if quiet {
		return log.New(io.Discard)
	}
	l := log.New(os.Stderr)
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

func hasErrors(diags []*diagnostics.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diagnostics.Error {
			return true
		}
	}
	return false
}
