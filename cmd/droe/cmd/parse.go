package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/frontend/parser"
	"github.com/droe-lang/droe-sub001/internal/resolver"
)

var parseResolve bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print a file's syntax tree as JSON",
	Long: `Parses one file and prints its syntax tree as indented JSON.
With --resolve, includes are expanded first and the merged tree is
printed instead.

Examples:
  droe parse app.droe
  droe parse --resolve app.droe | jq '.statements[].kind'`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseResolve, "resolve", false, "expand includes before printing")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(string(data))
	if err != nil {
		return err
	}
	if parseResolve {
		r := resolver.New(filepath.Dir(path), resolver.WithLogger(logger))
		prog, err = r.ResolveIncludes(prog, path, false)
		if err != nil {
			return err
		}
	}
	out, err := json.MarshalIndent(ast.Dump(prog), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
