package checker

import (
	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/types"
)

// collectSignatures registers every action's declared return type
// under its bare name, or "Module.action" inside a module definition.
// Tasks register the same way with no return value. The pass walks
// top-level statements and module bodies only: actions do not nest.
func (c *Checker) collectSignatures(stmts []ast.Statement, module string) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.ActionDefinition:
			c.signatures[qualify(module, s.Name)] = types.FromString(s.ReturnType)
		case *ast.TaskDefinition:
			c.signatures[qualify(module, s.Name)] = types.Unknown
		case *ast.ModuleDefinition:
			c.collectSignatures(s.Body, s.Name)
		}
	}
}

// ReturnType reports the declared return type of an action, qualified
// or bare, after the signature pass has run.
func (c *Checker) ReturnType(name string) (types.VariableType, bool) {
	t, ok := c.signatures[name]
	return t, ok
}

func qualify(module, name string) string {
	if module == "" {
		return name
	}
	return module + "." + name
}
