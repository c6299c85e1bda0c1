package resolver

import (
	"fmt"

	"github.com/droe-lang/droe-sub001/internal/frontend/parser"
)

// FileNotFoundError: the include's file does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("module file not found: %s", e.Path)
}

// IOError: the module file exists but could not be read.
type IOError struct {
	Module string
	Path   string
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading module %q from %s: %v", e.Module, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ModuleParseError: the included file failed to parse.
type ModuleParseError struct {
	Module string
	Err    *parser.ParseError
}

func (e *ModuleParseError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Err)
}

func (e *ModuleParseError) Unwrap() error { return e.Err }

// CircularImportError: a module was included while its own resolution
// was still in progress. Names the module whose load re-entered the
// loading set.
type CircularImportError struct {
	Module string
}

func (e *CircularImportError) Error() string {
	return fmt.Sprintf("circular import of module %q", e.Module)
}

// ModuleNotLoadedError: a cache lookup for a module nothing has
// resolved yet.
type ModuleNotLoadedError struct {
	Module string
}

func (e *ModuleNotLoadedError) Error() string {
	return fmt.Sprintf("module %q has not been loaded", e.Module)
}
