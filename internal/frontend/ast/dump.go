package ast

// Dump converts a node into a plain map/slice tree suitable for JSON
// output. The CLI's parse command feeds its result to json.MarshalIndent.
func Dump(n Node) any {
	switch n := n.(type) {
	case nil:
		return nil
	case *Program:
		m := node("Program", n)
		m["statements"] = dumpStatements(n.Statements)
		if len(n.Metadata) > 0 {
			meta := make([]any, len(n.Metadata))
			for i, a := range n.Metadata {
				meta[i] = Dump(a)
			}
			m["metadata"] = meta
		}
		if len(n.Includes) > 0 {
			incs := make([]any, len(n.Includes))
			for i, inc := range n.Includes {
				incs[i] = Dump(inc)
			}
			m["includes"] = incs
		}
		return m

	case *ModuleDefinition:
		return structure("ModuleDefinition", n.Name, n.Body, n)
	case *DataDefinition:
		return structure("DataDefinition", n.Name, n.Body, n)
	case *LayoutDefinition:
		return structure("LayoutDefinition", n.Name, n.Body, n)
	case *FormDefinition:
		return structure("FormDefinition", n.Name, n.Body, n)
	case *ScreenDefinition:
		return structure("ScreenDefinition", n.Name, n.Body, n)
	case *FragmentDefinition:
		return structure("FragmentDefinition", n.Name, n.Body, n)

	case *ActionDefinition:
		m := node("ActionDefinition", n)
		m["name"] = n.Name
		if len(n.Params) > 0 {
			params := make([]any, len(n.Params))
			for i, p := range n.Params {
				params[i] = p.Name
			}
			m["params"] = params
		}
		if n.ReturnType != "" {
			m["gives"] = n.ReturnType
		}
		m["body"] = dumpStatements(n.Body)
		return m
	case *TaskDefinition:
		return structure("TaskDefinition", n.Name, n.Body, n)

	case *DatabaseStatement:
		m := node("DatabaseStatement", n)
		m["operation"] = n.Operation
		m["entity"] = n.EntityName
		return m
	case *ApiCallStatement:
		m := node("ApiCallStatement", n)
		m["keyword"] = n.Keyword
		m["method"] = n.Method
		m["endpoint"] = n.Endpoint
		return m
	case *ServeStatement:
		m := node("ServeStatement", n)
		m["method"] = n.Method
		m["endpoint"] = n.Endpoint
		return m

	case *DisplayStatement:
		m := node("DisplayStatement", n)
		m["value"] = Dump(n.Value)
		return m
	case *Assignment:
		m := node("Assignment", n)
		m["target"] = Dump(n.Target)
		m["value"] = Dump(n.Value)
		return m
	case *VariableDeclaration:
		m := node("VariableDeclaration", n)
		m["name"] = n.Name
		m["type"] = n.TypeName
		if n.ElementType != "" {
			m["element"] = n.ElementType
		}
		if len(n.Modifiers) > 0 {
			m["modifiers"] = n.Modifiers
		}
		return m
	case *IfStatement:
		m := node("IfStatement", n)
		m["condition"] = Dump(n.Condition)
		m["then"] = dumpStatements(n.Then)
		if len(n.Else) > 0 {
			m["else"] = dumpStatements(n.Else)
		}
		return m
	case *WhileStatement:
		m := node("WhileStatement", n)
		m["condition"] = Dump(n.Condition)
		m["body"] = dumpStatements(n.Body)
		return m
	case *ForEachStatement:
		m := node("ForEachStatement", n)
		m["variable"] = n.Variable
		m["collection"] = Dump(n.Collection)
		m["body"] = dumpStatements(n.Body)
		return m
	case *ReturnStatement:
		m := node("ReturnStatement", n)
		if n.Value != nil {
			m["value"] = Dump(n.Value)
		}
		return m

	case *IncludeStatement:
		m := node("IncludeStatement", n)
		m["module"] = n.Module
		return m
	case *MetadataAnnotation:
		m := node("MetadataAnnotation", n)
		m["key"] = n.Key
		if n.Value != "" {
			m["value"] = n.Value
		}
		return m

	case *TitleComponent:
		return component("TitleComponent", n.Args, n)
	case *TextComponent:
		return component("TextComponent", n.Args, n)
	case *InputComponent:
		return component("InputComponent", n.Args, n)
	case *TextareaComponent:
		return component("TextareaComponent", n.Args, n)
	case *DropdownComponent:
		return component("DropdownComponent", n.Args, n)
	case *ToggleComponent:
		return component("ToggleComponent", n.Args, n)
	case *CheckboxComponent:
		return component("CheckboxComponent", n.Args, n)
	case *RadioComponent:
		return component("RadioComponent", n.Args, n)
	case *ButtonComponent:
		return component("ButtonComponent", n.Args, n)
	case *ImageComponent:
		return component("ImageComponent", n.Args, n)
	case *VideoComponent:
		return component("VideoComponent", n.Args, n)
	case *AudioComponent:
		return component("AudioComponent", n.Args, n)
	case *SlotComponent:
		return component("SlotComponent", n.Args, n)

	case *Literal:
		m := node("Literal", n)
		m["literal"] = string(n.Kind)
		m["value"] = n.Value
		return m
	case *Identifier:
		m := node("Identifier", n)
		m["name"] = n.Name
		return m
	case *BinaryOp:
		m := node("BinaryOp", n)
		m["operator"] = n.Operator
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
		return m
	case *ArithmeticOp:
		m := node("ArithmeticOp", n)
		m["operator"] = n.Operator
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
		return m
	case *PropertyAccess:
		m := node("PropertyAccess", n)
		m["object"] = Dump(n.Object)
		m["property"] = n.Property
		return m
	case *ActionInvocation:
		m := node("ActionInvocation", n)
		if n.Module != "" {
			m["module"] = n.Module
		}
		m["name"] = n.Name
		args := make([]any, len(n.Args))
		for i, a := range n.Args {
			args[i] = Dump(a)
		}
		m["args"] = args
		return m
	}
	return map[string]any{"kind": "unknown"}
}

func node(kind string, n Node) map[string]any {
	m := map[string]any{"kind": kind}
	if p := n.Pos(); p.Known() {
		m["line"] = p.Line
		m["column"] = p.Column
	}
	return m
}

func structure(kind, name string, body []Statement, n Node) map[string]any {
	m := node(kind, n)
	m["name"] = name
	m["body"] = dumpStatements(body)
	return m
}

func component(kind string, args []*Literal, n Node) map[string]any {
	m := node(kind, n)
	dumped := make([]any, len(args))
	for i, a := range args {
		dumped[i] = Dump(a)
	}
	m["args"] = dumped
	return m
}

func dumpStatements(stmts []Statement) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = Dump(s)
	}
	return out
}
