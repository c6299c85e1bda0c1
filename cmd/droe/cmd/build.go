package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/droe-lang/droe-sub001/internal/compiler"
	"github.com/droe-lang/droe-sub001/internal/config"
	"github.com/droe-lang/droe-sub001/internal/diagnostics"
)

var (
	buildTarget    string
	buildFramework string
	buildOut       string
	buildStrict    bool
)

var buildCmd = &cobra.Command{
	Use:   "build FILE",
	Short: "Compile a source file for a code generation target",
	Long: `Runs the front end and hands the resolved program to the
generator for the chosen target. The target comes from --target, the
program's @target annotation or the project manifest, in that order.

Examples:
  droe build app.droe --target html
  droe build app.droe -t go -f fiber -o build/app.go`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildTarget, "target", "t", "", "code generation target (html, go, java, ...)")
	buildCmd.Flags().StringVarP(&buildFramework, "framework", "f", "", "framework for the target")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "artifact output path")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "treat warnings as blocking")
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := args[0]
	manifest, err := config.Load(filepath.Dir(path))
	if err != nil {
		return err
	}
	if manifest.Found {
		logger.Debug("manifest loaded", "path", manifest.Path)
	}

	opts := &compiler.Options{
		Path:       path,
		Target:     buildTarget,
		Framework:  buildFramework,
		StrictMode: buildStrict || manifest.Build.Strict,
		Logger:     logger,
	}
	if opts.Target == "" && manifest.Build.Target != "" {
		opts.Target = manifest.Build.Target
	}
	if opts.Framework == "" && manifest.Build.Framework != "" {
		opts.Framework = manifest.Build.Framework
	}

	res, err := compiler.Compile(opts)
	if res != nil && len(res.Diagnostics) > 0 {
		diagnostics.Lint(os.Stderr, path, res.Diagnostics)
	}
	if err != nil {
		return err
	}
	if hasErrors(res.Diagnostics) {
		return fmt.Errorf("build failed: %s", diagnostics.Summary(res.Diagnostics))
	}
	if res.Artifact == nil {
		if res.Target == "" {
			return fmt.Errorf("no target: pass --target, annotate the program with @target, or set build.target in %s", config.TOMLManifest)
		}
		return fmt.Errorf("build blocked: %s", diagnostics.Summary(res.Diagnostics))
	}

	out := artifactPath(manifest, path, res)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(out, res.Artifact, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(res.Artifact))
	return nil
}

// artifactPath picks the output file: --out wins, then the manifest's
// output directory, then the source file's directory.
func artifactPath(manifest *config.Manifest, srcPath string, res *compiler.Result) string {
	if buildOut != "" {
		return buildOut
	}
	name := strings.TrimSuffix(filepath.Base(srcPath), ".droe") + res.Target.Ext()
	if manifest.Found {
		return filepath.Join(filepath.Dir(manifest.Path), manifest.Build.Output, name)
	}
	return filepath.Join(filepath.Dir(srcPath), name)
}
