package ast

import "github.com/droe-lang/droe-sub001/internal/source"

// ModuleDefinition: module NAME ... end module
type ModuleDefinition struct {
	Name string
	Body []Statement
	source.Position
}

func (m *ModuleDefinition) INode()               {} // Implements Node interface
func (m *ModuleDefinition) Stmt()                {} // Implements Statement interface
func (m *ModuleDefinition) Pos() source.Position { return m.Position }

// DataDefinition: data NAME ... end data
type DataDefinition struct {
	Name string
	Body []Statement
	source.Position
}

func (d *DataDefinition) INode()               {} // Implements Node interface
func (d *DataDefinition) Stmt()                {} // Implements Statement interface
func (d *DataDefinition) Pos() source.Position { return d.Position }

// LayoutDefinition: layout NAME ... end layout
type LayoutDefinition struct {
	Name string
	Body []Statement
	source.Position
}

func (l *LayoutDefinition) INode()               {} // Implements Node interface
func (l *LayoutDefinition) Stmt()                {} // Implements Statement interface
func (l *LayoutDefinition) Pos() source.Position { return l.Position }

// FormDefinition: form NAME ... end form
type FormDefinition struct {
	Name string
	Body []Statement
	source.Position
}

func (f *FormDefinition) INode()               {} // Implements Node interface
func (f *FormDefinition) Stmt()                {} // Implements Statement interface
func (f *FormDefinition) Pos() source.Position { return f.Position }

// ScreenDefinition: screen NAME ... end screen
type ScreenDefinition struct {
	Name string
	Body []Statement
	source.Position
}

func (s *ScreenDefinition) INode()               {} // Implements Node interface
func (s *ScreenDefinition) Stmt()                {} // Implements Statement interface
func (s *ScreenDefinition) Pos() source.Position { return s.Position }

// FragmentDefinition: fragment NAME ... end fragment
type FragmentDefinition struct {
	Name string
	Body []Statement
	source.Position
}

func (f *FragmentDefinition) INode()               {} // Implements Node interface
func (f *FragmentDefinition) Stmt()                {} // Implements Statement interface
func (f *FragmentDefinition) Pos() source.Position { return f.Position }

// Parameter is one declared action parameter.
type Parameter struct {
	Name string
	source.Position
}

// ActionDefinition: action NAME [with a, b] [gives TYPE] ... end action
type ActionDefinition struct {
	Name       string
	Params     []Parameter
	ReturnType string // as written after "gives"; empty when absent
	Body       []Statement
	source.Position
}

func (a *ActionDefinition) INode()               {} // Implements Node interface
func (a *ActionDefinition) Stmt()                {} // Implements Statement interface
func (a *ActionDefinition) Pos() source.Position { return a.Position }

// TaskDefinition: task NAME ... end task. A task is an action that
// gives no value.
type TaskDefinition struct {
	Name string
	Body []Statement
	source.Position
}

func (t *TaskDefinition) INode()               {} // Implements Node interface
func (t *TaskDefinition) Stmt()                {} // Implements Statement interface
func (t *TaskDefinition) Pos() source.Position { return t.Position }

// DatabaseStatement: db OPERATION ENTITY
type DatabaseStatement struct {
	Operation  string
	EntityName string
	source.Position
}

func (d *DatabaseStatement) INode()               {} // Implements Node interface
func (d *DatabaseStatement) Stmt()                {} // Implements Statement interface
func (d *DatabaseStatement) Pos() source.Position { return d.Position }

// ApiCallStatement: call|fetch|update|delete METHOD ENDPOINT
type ApiCallStatement struct {
	Keyword  string
	Method   string
	Endpoint string
	source.Position
}

func (a *ApiCallStatement) INode()               {} // Implements Node interface
func (a *ApiCallStatement) Stmt()                {} // Implements Statement interface
func (a *ApiCallStatement) Pos() source.Position { return a.Position }

// ServeStatement: serve METHOD ENDPOINT
type ServeStatement struct {
	Method   string
	Endpoint string
	source.Position
}

func (s *ServeStatement) INode()               {} // Implements Node interface
func (s *ServeStatement) Stmt()                {} // Implements Statement interface
func (s *ServeStatement) Pos() source.Position { return s.Position }

// DisplayStatement: display EXPR
type DisplayStatement struct {
	Value Expression
	source.Position
}

func (d *DisplayStatement) INode()               {} // Implements Node interface
func (d *DisplayStatement) Stmt()                {} // Implements Statement interface
func (d *DisplayStatement) Pos() source.Position { return d.Position }

// Assignment: set TARGET to EXPR. Target is an Identifier or a
// PropertyAccess chain.
type Assignment struct {
	Target Expression
	Value  Expression
	source.Position
}

func (a *Assignment) INode()               {} // Implements Node interface
func (a *Assignment) Stmt()                {} // Implements Statement interface
func (a *Assignment) Pos() source.Position { return a.Position }

// VariableDeclaration: NAME is TYPE [modifiers...]. Doubles as the
// field form inside data definitions.
type VariableDeclaration struct {
	Name        string
	TypeName    string   // as written, e.g. "text" or "list of text"
	ElementType string   // element word of a list/group phrase
	Modifiers   []string // trailing words such as "required"
	source.Position
}

func (v *VariableDeclaration) INode()               {} // Implements Node interface
func (v *VariableDeclaration) Stmt()                {} // Implements Statement interface
func (v *VariableDeclaration) Pos() source.Position { return v.Position }

// IfStatement: if EXPR ... [else ...] end if
type IfStatement struct {
	Condition Expression
	Then      []Statement
	Else      []Statement
	source.Position
}

func (i *IfStatement) INode()               {} // Implements Node interface
func (i *IfStatement) Stmt()                {} // Implements Statement interface
func (i *IfStatement) Pos() source.Position { return i.Position }

// WhileStatement: while EXPR ... end while
type WhileStatement struct {
	Condition Expression
	Body      []Statement
	source.Position
}

func (w *WhileStatement) INode()               {} // Implements Node interface
func (w *WhileStatement) Stmt()                {} // Implements Statement interface
func (w *WhileStatement) Pos() source.Position { return w.Position }

// ForEachStatement: for each NAME in EXPR ... end for
type ForEachStatement struct {
	Variable   string
	Collection Expression
	Body       []Statement
	source.Position
}

func (f *ForEachStatement) INode()               {} // Implements Node interface
func (f *ForEachStatement) Stmt()                {} // Implements Statement interface
func (f *ForEachStatement) Pos() source.Position { return f.Position }

// ReturnStatement: return [EXPR]
type ReturnStatement struct {
	Value Expression // nil for a bare return
	source.Position
}

func (r *ReturnStatement) INode()               {} // Implements Node interface
func (r *ReturnStatement) Stmt()                {} // Implements Statement interface
func (r *ReturnStatement) Pos() source.Position { return r.Position }

// IncludeStatement: include MODULE. Module is the reference as
// written: a dotted name like "lib.utils" or a quoted path.
type IncludeStatement struct {
	Module string
	source.Position
}

func (i *IncludeStatement) INode()               {} // Implements Node interface
func (i *IncludeStatement) Stmt()                {} // Implements Statement interface
func (i *IncludeStatement) Pos() source.Position { return i.Position }

// MetadataAnnotation: @key [value]
type MetadataAnnotation struct {
	Key   string
	Value string
	source.Position
}

func (m *MetadataAnnotation) INode()               {} // Implements Node interface
func (m *MetadataAnnotation) Stmt()                {} // Implements Statement interface
func (m *MetadataAnnotation) Pos() source.Position { return m.Position }
