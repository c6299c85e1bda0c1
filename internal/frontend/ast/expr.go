package ast

import "github.com/droe-lang/droe-sub001/internal/source"

type LiteralKind string

const (
	StringLiteral  LiteralKind = "string"
	IntLiteral     LiteralKind = "int"
	DecimalLiteral LiteralKind = "decimal"
	BooleanLiteral LiteralKind = "boolean"
)

// Literal holds the raw source text of a value. Booleans keep their
// spelling (true/false/yes/no); numbers keep their digits, including a
// folded leading minus.
type Literal struct {
	Kind  LiteralKind
	Value string
	source.Position
}

func (l *Literal) INode()               {} // Implements Node interface
func (l *Literal) Expr()                {} // Implements Expression interface
func (l *Literal) Pos() source.Position { return l.Position }

type Identifier struct {
	Name string
	source.Position
}

func (i *Identifier) INode()               {} // Implements Node interface
func (i *Identifier) Expr()                {} // Implements Expression interface
func (i *Identifier) Pos() source.Position { return i.Position }

// BinaryOp covers comparisons and logical operators:
// == != > < >= <= and or. The prefix operator "not" also uses this
// node, with a nil Left.
type BinaryOp struct {
	Left     Expression
	Operator string
	Right    Expression
	source.Position
}

func (b *BinaryOp) INode()               {} // Implements Node interface
func (b *BinaryOp) Expr()                {} // Implements Expression interface
func (b *BinaryOp) Pos() source.Position { return b.Position }

// ArithmeticOp covers + - * /.
type ArithmeticOp struct {
	Left     Expression
	Operator string
	Right    Expression
	source.Position
}

func (a *ArithmeticOp) INode()               {} // Implements Node interface
func (a *ArithmeticOp) Expr()                {} // Implements Expression interface
func (a *ArithmeticOp) Pos() source.Position { return a.Position }

// PropertyAccess: OBJECT.PROPERTY
type PropertyAccess struct {
	Object   Expression
	Property string
	source.Position
}

func (p *PropertyAccess) INode()               {} // Implements Node interface
func (p *PropertyAccess) Expr()                {} // Implements Expression interface
func (p *PropertyAccess) Pos() source.Position { return p.Position }

// ActionInvocation: NAME(ARGS) or MODULE.NAME(ARGS). Valid both as a
// statement and as an expression.
type ActionInvocation struct {
	Module string // optional qualifier
	Name   string
	Args   []Expression
	source.Position
}

func (a *ActionInvocation) INode()               {} // Implements Node interface
func (a *ActionInvocation) Stmt()                {} // Implements Statement interface
func (a *ActionInvocation) Expr()                {} // Implements Expression interface
func (a *ActionInvocation) Pos() source.Position { return a.Position }
