// Package ast defines the droe syntax tree: a closed set of node
// variants produced by the parser and consumed by the module resolver,
// the checker, and downstream code generators.
package ast

import "github.com/droe-lang/droe-sub001/internal/source"

// Node is implemented by every droe syntax tree node.
type Node interface {
	INode()
	Pos() source.Position
}

// Statement is anything that can appear in a statement list.
type Statement interface {
	Node
	Stmt()
}

// Expression is anything usable as a value.
type Expression interface {
	Node
	Expr()
}

// Program is the root of one parsed droe file.
//
// Metadata annotations appear both in Metadata and in Statements: the
// statement list keeps document order for passes that care about it,
// the metadata list gives direct access to file-level settings.
// Includes is filled by the module resolver with the include
// statements it consumed, in order; a resolved program has no
// IncludeStatement left in Statements.
type Program struct {
	Statements []Statement
	Metadata   []*MetadataAnnotation
	Includes   []*IncludeStatement
	source.Position
}

func (p *Program) INode()               {} // Implements Node interface
func (p *Program) Pos() source.Position { return p.Position }
