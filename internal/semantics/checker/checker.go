// Package checker validates a resolved program. It runs two passes:
// signature collection, then a scope-tracked walk of every statement.
// The checker never aborts; every finding lands in the returned
// diagnostic list.
package checker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/droe-lang/droe-sub001/internal/diagnostics"
	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/semantics/table"
	"github.com/droe-lang/droe-sub001/internal/source"
	"github.com/droe-lang/droe-sub001/internal/types"
)

const sourceTag = "droe-check"

type Checker struct {
	signatures map[string]types.VariableType
	scopes     *table.ScopeStack
	bag        *diagnostics.Bag
	module     string // current module qualifier during the walk
	logger     *log.Logger
}

type Option func(*Checker)

func WithLogger(l *log.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

func New(opts ...Option) *Checker {
	c := &Checker{
		signatures: make(map[string]types.VariableType),
		scopes:     table.NewScopeStack(),
		bag:        diagnostics.NewBag(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.logger = c.logger.WithPrefix("checker")
	return c
}

// Check runs both passes over a program and returns every finding.
func Check(prog *ast.Program, opts ...Option) []*diagnostics.Diagnostic {
	return New(opts...).Check(prog)
}

func (c *Checker) Check(prog *ast.Program) []*diagnostics.Diagnostic {
	c.collectSignatures(prog.Statements, "")
	c.logger.Debug("signatures collected", "actions", len(c.signatures))
	c.checkStatements(prog.Statements)
	c.logger.Debug("check finished", "diagnostics", c.bag.Count())
	return c.bag.Diagnostics()
}

func (c *Checker) checkStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		c.checkStatement(stmt)
	}
}

func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		c.checkAssignment(s)
	case *ast.VariableDeclaration:
		c.checkDeclaration(s)
	case *ast.DisplayStatement:
		c.checkExpression(s.Value)
	case *ast.ReturnStatement:
		if s.Value != nil {
			c.checkExpression(s.Value)
		}
	case *ast.IfStatement:
		c.checkExpression(s.Condition)
		c.inScope(func() { c.checkStatements(s.Then) })
		if len(s.Else) > 0 {
			c.inScope(func() { c.checkStatements(s.Else) })
		}
	case *ast.WhileStatement:
		c.checkExpression(s.Condition)
		c.inScope(func() { c.checkStatements(s.Body) })
	case *ast.ForEachStatement:
		c.checkExpression(s.Collection)
		c.inScope(func() {
			c.declare(s.Variable, types.Unknown, false, s.Pos())
			c.checkStatements(s.Body)
		})
	case *ast.ActionDefinition:
		c.inScope(func() {
			for _, param := range s.Params {
				c.declare(param.Name, types.Unknown, false, param.Position)
			}
			c.checkStatements(s.Body)
		})
	case *ast.TaskDefinition:
		c.inScope(func() { c.checkStatements(s.Body) })
	case *ast.ModuleDefinition:
		prev := c.module
		c.module = s.Name
		c.inScope(func() { c.checkStatements(s.Body) })
		c.module = prev
	case *ast.ActionInvocation:
		c.checkInvocation(s)
	default:
		// data/layout/form/screen/fragment bodies, components,
		// db/api/serve statements, includes and metadata are
		// structurally valid once parsed
	}
}

func (c *Checker) checkAssignment(s *ast.Assignment) {
	c.checkExpression(s.Value)
	switch target := s.Target.(type) {
	case *ast.Identifier:
		scope := c.scopes.Current()
		if v, ok := scope.Lookup(target.Name); ok {
			c.checkLiteralFlow(v, s.Value, target.Pos())
			return
		}
		// first assignment registers the name; the value type is
		// not inferred
		if _, err := scope.Declare(target.Name, types.Unknown, true); err != nil {
			c.report(diagnostics.NewError(err.Error(), target.Pos()))
		}
	case *ast.PropertyAccess:
		c.checkExpression(target)
	}
}

func (c *Checker) checkDeclaration(s *ast.VariableDeclaration) {
	t := types.FromString(s.TypeName)
	if t == types.Unknown {
		c.report(diagnostics.NewWarning(
			fmt.Sprintf("Unknown type '%s' for variable '%s'", s.TypeName, s.Name), s.Pos()))
	}
	c.declare(s.Name, t, true, s.Pos())
}

// checkLiteralFlow flags literal values that cannot flow into a
// variable of known type. Only literals are checked: droe does no
// inference on names or call results.
func (c *Checker) checkLiteralFlow(v *table.Variable, value ast.Expression, pos source.Position) {
	lit, ok := value.(*ast.Literal)
	if !ok || v.Type == types.Unknown {
		return
	}
	src := literalType(lit)
	if !types.Compatible(v.Type, src) {
		c.report(diagnostics.NewError(
			fmt.Sprintf("Type mismatch: cannot assign %s value to %s variable '%s'", src, v.Type, v.Name), pos))
	}
}

func (c *Checker) checkExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if _, ok := c.scopes.Current().Lookup(e.Name); !ok {
			c.report(diagnostics.NewError("Undefined variable or action: "+e.Name, e.Pos()))
		}
	case *ast.BinaryOp:
		c.checkExpression(e.Left)
		c.checkExpression(e.Right)
	case *ast.ArithmeticOp:
		c.checkExpression(e.Left)
		c.checkExpression(e.Right)
	case *ast.PropertyAccess:
		c.checkExpression(e.Object)
	case *ast.ActionInvocation:
		c.checkInvocation(e)
	}
}

// checkInvocation resolves the call target against the signature map:
// the qualified name when a module qualifier is present, the bare name
// otherwise, then the current module's own actions as a fallback.
func (c *Checker) checkInvocation(inv *ast.ActionInvocation) {
	for _, arg := range inv.Args {
		c.checkExpression(arg)
	}
	name := inv.Name
	if inv.Module != "" {
		name = inv.Module + "." + inv.Name
	}
	if _, ok := c.signatures[name]; ok {
		return
	}
	if inv.Module == "" && c.module != "" {
		if _, ok := c.signatures[c.module+"."+inv.Name]; ok {
			return
		}
	}
	c.report(diagnostics.NewError("Undefined variable or action: "+name, inv.Pos()))
}

func (c *Checker) inScope(fn func()) {
	c.scopes.Push()
	defer c.scopes.Pop()
	fn()
}

func (c *Checker) declare(name string, t types.VariableType, mutable bool, pos source.Position) {
	if _, err := c.scopes.Current().Declare(name, t, mutable); err != nil {
		c.report(diagnostics.NewError(err.Error(), pos))
	}
}

func (c *Checker) report(d *diagnostics.Diagnostic) {
	c.bag.Add(d.WithSource(sourceTag))
}

func literalType(lit *ast.Literal) types.VariableType {
	switch lit.Kind {
	case ast.IntLiteral:
		return types.Int
	case ast.DecimalLiteral:
		return types.Decimal
	case ast.BooleanLiteral:
		return types.Boolean
	default:
		return types.Text
	}
}
