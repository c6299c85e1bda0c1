// Package diagnostics carries the checker's findings. Unlike the
// parser, which stops at the first syntax error, semantic passes
// collect every finding and report them together.
package diagnostics

import (
	"fmt"

	"github.com/droe-lang/droe-sub001/internal/source"
)

type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	}
	return "unknown"
}

// Diagnostic is one finding. Line and Character are 1-based; zero
// means the position is unknown. Source tags the pass that produced
// the finding, e.g. "droe-check".
type Diagnostic struct {
	Severity  Severity
	Message   string
	Line      int
	Character int
	Source    string
}

func New(sev Severity, msg string, pos source.Position) *Diagnostic {
	return &Diagnostic{Severity: sev, Message: msg, Line: pos.Line, Character: pos.Column}
}

func NewError(msg string, pos source.Position) *Diagnostic {
	return New(Error, msg, pos)
}

func NewWarning(msg string, pos source.Position) *Diagnostic {
	return New(Warning, msg, pos)
}

func NewInfo(msg string, pos source.Position) *Diagnostic {
	return New(Info, msg, pos)
}

func NewHint(msg string, pos source.Position) *Diagnostic {
	return New(Hint, msg, pos)
}

// WithSource tags the producing pass and returns the diagnostic for
// chaining.
func (d *Diagnostic) WithSource(src string) *Diagnostic {
	d.Source = src
	return d
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Character, d.Severity, d.Message)
}
