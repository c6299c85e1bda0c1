// Package resolver expands include statements into a single flat
// program. Every module is read and parsed at most once per resolver;
// a loading set catches include cycles as they form.
package resolver

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/frontend/parser"
)

type ReadFileFunc func(path string) ([]byte, error)

type Resolver struct {
	baseDir  string
	cache    map[string]*ast.Program
	paths    map[string]string
	loading  map[string]struct{}
	readFile ReadFileFunc
	logger   *log.Logger
}

type Option func(*Resolver)

// WithReadFile swaps the file reader, mainly for tests.
func WithReadFile(fn ReadFileFunc) Option {
	return func(r *Resolver) { r.readFile = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

func New(baseDir string, opts ...Option) *Resolver {
	r := &Resolver{
		baseDir:  baseDir,
		cache:    make(map[string]*ast.Program),
		paths:    make(map[string]string),
		loading:  make(map[string]struct{}),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	r.logger = r.logger.WithPrefix("resolver")
	return r
}

// ResolveIncludes expands every top-level include of prog: the
// included programs' statements come first, in include order, followed
// by prog's own non-include statements. Metadata and position are
// preserved unchanged, and the consumed includes are recorded on the
// result. A program without includes comes back as it is.
//
// Unless preserveBasePath is set, the resolver re-anchors its base
// directory to currentFile's directory. Recursive resolutions pass
// true, so nested includes resolve relative to the entry file's
// directory, not the including file's.
func (r *Resolver) ResolveIncludes(prog *ast.Program, currentFile string, preserveBasePath bool) (*ast.Program, error) {
	if !preserveBasePath {
		r.baseDir = filepath.Dir(currentFile)
	}
	var includes []*ast.IncludeStatement
	for _, stmt := range prog.Statements {
		if inc, ok := stmt.(*ast.IncludeStatement); ok {
			includes = append(includes, inc)
		}
	}
	if len(includes) == 0 {
		return prog, nil
	}
	merged := make([]ast.Statement, 0, len(prog.Statements))
	for _, inc := range includes {
		r.logger.Debug("resolving include", "module", inc.Module, "from", currentFile)
		mod, err := r.loadModule(inc.Module)
		if err != nil {
			return nil, err
		}
		merged = append(merged, mod.Statements...)
	}
	for _, stmt := range prog.Statements {
		if _, ok := stmt.(*ast.IncludeStatement); !ok {
			merged = append(merged, stmt)
		}
	}
	return &ast.Program{
		Statements: merged,
		Metadata:   prog.Metadata,
		Includes:   includes,
		Position:   prog.Position,
	}, nil
}

// loadModule reads, parses and resolves one module, memoizing the
// result. The loading set holds modules whose resolution is still in
// progress; re-entering it is an include cycle. The set is cleaned up
// on every path out, so a failed load does not poison later ones.
func (r *Resolver) loadModule(name string) (*ast.Program, error) {
	if _, busy := r.loading[name]; busy {
		return nil, &CircularImportError{Module: name}
	}
	if mod, ok := r.cache[name]; ok {
		r.logger.Debug("cache hit", "module", name)
		return mod, nil
	}
	path := r.modulePath(name)
	data, err := r.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, &IOError{Module: name, Path: path, Err: err}
	}
	r.loading[name] = struct{}{}
	defer delete(r.loading, name)

	prog, err := parser.Parse(string(data))
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			return nil, &ModuleParseError{Module: name, Err: perr}
		}
		return nil, &IOError{Module: name, Path: path, Err: err}
	}
	resolved, err := r.ResolveIncludes(prog, path, true)
	if err != nil {
		return nil, err
	}
	r.cache[name] = resolved
	r.paths[name] = path
	r.logger.Debug("module loaded", "module", name, "path", path, "statements", len(resolved.Statements))
	return resolved, nil
}

// modulePath maps an include reference to a file under the base
// directory. Quoted paths go through as written, dotted names become
// nested directories; ".droe" is appended when missing.
func (r *Resolver) modulePath(name string) string {
	path := name
	if !strings.HasSuffix(path, ".droe") {
		if !strings.Contains(path, "/") {
			path = strings.ReplaceAll(path, ".", "/")
		}
		path += ".droe"
	}
	return filepath.Join(r.baseDir, filepath.FromSlash(path))
}

// Cached returns a previously loaded module.
func (r *Resolver) Cached(name string) (*ast.Program, error) {
	if mod, ok := r.cache[name]; ok {
		return mod, nil
	}
	return nil, &ModuleNotLoadedError{Module: name}
}

// Modules lists the loaded module names, sorted.
func (r *Resolver) Modules() []string {
	names := make([]string, 0, len(r.cache))
	for name := range r.cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path reports where a loaded module was read from.
func (r *Resolver) Path(name string) (string, bool) {
	p, ok := r.paths[name]
	return p, ok
}
