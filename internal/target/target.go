// Package target owns the boundary between the front end and code
// generation: target/framework names, and a registry the generators
// plug into. The generators themselves live elsewhere; nothing in this
// package emits code.
package target

import "fmt"

// Target is a code generation target. The zero value means no target
// was requested and compilation stops after the front end.
type Target string

const (
	HTML   Target = "html"
	Go     Target = "go"
	Java   Target = "java"
	Kotlin Target = "kotlin"
	Swift  Target = "swift"
	Python Target = "python"
	Rust   Target = "rust"
	Node   Target = "node"
)

// frameworks lists the accepted frameworks per target, default first.
// HTML has no framework dimension.
var frameworks = map[Target][]string{
	HTML:   nil,
	Go:     {"fiber"},
	Java:   {"spring"},
	Kotlin: {"compose"},
	Swift:  {"swiftui"},
	Python: {"fastapi"},
	Rust:   {"axum"},
	Node:   {"express"},
}

// UnknownTargetError: the target name is not one this compiler knows.
type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %q", e.Name)
}

// UnknownFrameworkError: the framework does not belong to the target.
type UnknownFrameworkError struct {
	Target    Target
	Framework string
}

func (e *UnknownFrameworkError) Error() string {
	return fmt.Sprintf("unknown framework %q for target %q", e.Framework, e.Target)
}

// Parse resolves a target name from a flag, annotation or manifest.
func Parse(name string) (Target, error) {
	t := Target(name)
	if _, ok := frameworks[t]; !ok {
		return "", &UnknownTargetError{Name: name}
	}
	return t, nil
}

// DefaultFramework returns the target's default framework, or "" for
// targets without one.
func (t Target) DefaultFramework() string {
	if fws := frameworks[t]; len(fws) > 0 {
		return fws[0]
	}
	return ""
}

// ValidFramework reports whether fw belongs to the target. The empty
// framework is always valid and means the default.
func (t Target) ValidFramework(fw string) bool {
	if fw == "" {
		return true
	}
	for _, known := range frameworks[t] {
		if known == fw {
			return true
		}
	}
	return false
}

// Ext is the artifact file extension for the target.
func (t Target) Ext() string {
	switch t {
	case HTML:
		return ".html"
	case Go:
		return ".go"
	case Java:
		return ".java"
	case Kotlin:
		return ".kt"
	case Swift:
		return ".swift"
	case Python:
		return ".py"
	case Rust:
		return ".rs"
	case Node:
		return ".js"
	}
	return ""
}
