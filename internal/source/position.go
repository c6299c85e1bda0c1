package source

import "fmt"

// Position is a 1-based line/column pair inside a droe source file.
// The zero value means the position is unknown.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

// Known reports whether the position points at real source text.
func (p Position) Known() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.Known() {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
