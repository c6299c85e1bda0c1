package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/droe-lang/droe-sub001/internal/compiler"
	"github.com/droe-lang/droe-sub001/internal/diagnostics"
)

var checkPretty bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse and type-check source files",
	Long: `Parses each file, expands its includes and runs the type
checker, reporting every diagnostic as file:line:col. A file that
fails to parse reports the parse error and nothing else.

Examples:
  droe check app.droe
  droe check --pretty src/*.droe`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runCheck,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkPretty, "pretty", false, "show source excerpts under diagnostics")
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := false
	for _, path := range args {
		res, err := compiler.Check(&compiler.Options{Path: path, Logger: logger})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		if len(res.Diagnostics) == 0 {
			continue
		}
		report(path, res.Diagnostics)
		if hasErrors(res.Diagnostics) {
			failed = true
		}
	}
	if failed {
		return errProblems
	}
	return nil
}

func report(path string, diags []*diagnostics.Diagnostic) {
	if checkPretty {
		if src, err := os.ReadFile(path); err == nil {
			diagnostics.Pretty(os.Stdout, path, string(src), diags)
			return
		}
	}
	diagnostics.Lint(os.Stdout, path, diags)
}
