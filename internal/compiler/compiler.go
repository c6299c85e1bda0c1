// Package compiler drives the front end: parse, resolve includes,
// check, and hand the program to a registered generator when a target
// is requested.
package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/droe-lang/droe-sub001/internal/diagnostics"
	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/frontend/parser"
	"github.com/droe-lang/droe-sub001/internal/resolver"
	"github.com/droe-lang/droe-sub001/internal/semantics/checker"
	"github.com/droe-lang/droe-sub001/internal/target"
)

// Options for compilation.
type Options struct {
	// Path to the entry file. Includes resolve relative to its
	// directory.
	Path string
	// Source text. Read from Path when empty.
	Source string
	// Target and Framework select a generator. Both override the
	// program's @target and @framework annotations; when neither is
	// set anywhere, compilation stops after checking.
	Target    string
	Framework string
	// PreserveBasePath keeps the resolver anchored to a base
	// directory chosen by the caller instead of the entry file's.
	PreserveBasePath bool
	// StrictMode blocks generation on warnings, not just errors.
	StrictMode bool
	Logger     *log.Logger
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger.WithPrefix("compiler")
	}
	return log.New(io.Discard)
}

// Result of compilation. Diagnostics never abort the front end: a
// program with diagnostics still carries a complete resolved AST.
type Result struct {
	BuildID     string
	Program     *ast.Program
	Diagnostics []*diagnostics.Diagnostic
	Target      target.Target
	Framework   string
	Artifact    []byte
}

// Compile runs the pipeline. Parse and resolution failures abort with
// an error and no Result. Generation failures return the error
// alongside the front-end Result, so callers can still show
// diagnostics.
func Compile(opts *Options) (*Result, error) {
	logger := opts.logger()
	res, err := frontend(opts, logger)
	if err != nil {
		return nil, err
	}
	if err := generate(res, opts, logger); err != nil {
		return res, err
	}
	return res, nil
}

// Check runs the front end only, never generating code.
func Check(opts *Options) (*Result, error) {
	return frontend(opts, opts.logger())
}

// CompileWithModules compiles in-memory source whose includes resolve
// relative to path.
func CompileWithModules(source, path, targetName, framework string) (*Result, error) {
	return Compile(&Options{
		Source:    source,
		Path:      path,
		Target:    targetName,
		Framework: framework,
	})
}

// frontend parses the entry file, expands its includes and checks the
// merged program.
func frontend(opts *Options, logger *log.Logger) (*Result, error) {
	res := &Result{BuildID: uuid.NewString()}

	source := opts.Source
	if source == "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", opts.Path, err)
		}
		source = string(data)
	}

	logger.Debug("parsing", "path", opts.Path, "build", res.BuildID)
	prog, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	r := resolver.New(filepath.Dir(opts.Path), resolver.WithLogger(logger))
	resolved, err := r.ResolveIncludes(prog, opts.Path, opts.PreserveBasePath)
	if err != nil {
		return nil, err
	}
	res.Program = resolved
	logger.Debug("includes resolved", "modules", len(r.Modules()), "statements", len(resolved.Statements))

	res.Diagnostics = checker.Check(resolved, checker.WithLogger(logger))
	logger.Debug("check complete", "diagnostics", len(res.Diagnostics))
	return res, nil
}

// generate resolves the target and framework and runs the generator.
// Error diagnostics block generation, and in strict mode warnings do
// too; a program without a target stops cleanly after the front end.
func generate(res *Result, opts *Options, logger *log.Logger) error {
	name := opts.Target
	if name == "" {
		name = metaValue(res.Program, "target")
	}
	if name == "" {
		return nil
	}
	t, err := target.Parse(name)
	if err != nil {
		return err
	}
	res.Target = t
	res.Framework = opts.Framework
	if res.Framework == "" {
		res.Framework = metaValue(res.Program, "framework")
	}
	if res.Framework == "" {
		res.Framework = t.DefaultFramework()
	}

	if blocked, reason := blocked(res.Diagnostics, opts.StrictMode); blocked {
		logger.Debug("generation skipped", "target", t, "reason", reason)
		return nil
	}
	gen, err := target.Lookup(t, res.Framework)
	if err != nil {
		return err
	}
	artifact, err := gen.Generate(res.Program)
	if err != nil {
		return fmt.Errorf("generator %s failed: %w", gen.Name(), err)
	}
	res.Artifact = artifact
	logger.Debug("generated", "target", t, "framework", res.Framework, "bytes", len(artifact))
	return nil
}

func blocked(diags []*diagnostics.Diagnostic, strict bool) (bool, string) {
	warnings := 0
	for _, d := range diags {
		switch d.Severity {
		case diagnostics.Error:
			return true, "errors"
		case diagnostics.Warning:
			warnings++
		}
	}
	if strict && warnings > 0 {
		return true, "warnings in strict mode"
	}
	return false, ""
}

func metaValue(prog *ast.Program, key string) string {
	for _, m := range prog.Metadata {
		if m.Key == key {
			return m.Value
		}
	}
	return ""
}
