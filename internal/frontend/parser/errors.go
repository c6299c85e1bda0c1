package parser

import "fmt"

// ParseError is the fail-fast syntax error: the first problem aborts
// the parse and nothing after it is looked at. Line and column are
// 1-based.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}
