package target

import (
	"errors"
	"testing"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
)

type fakeGen struct {
	name string
	out  []byte
}

func (g *fakeGen) Name() string                          { return g.name }
func (g *fakeGen) Generate(*ast.Program) ([]byte, error) { return g.out, nil }

func TestParse(t *testing.T) {
	for _, name := range []string{"html", "go", "java", "kotlin", "swift", "python", "rust", "node"} {
		got, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", name, err)
		}
		if string(got) != name {
			t.Errorf("Parse(%q) = %q", name, got)
		}
	}

	_, err := Parse("cobol")
	var uerr *UnknownTargetError
	if !errors.As(err, &uerr) || uerr.Name != "cobol" {
		t.Errorf("Parse(cobol) = %v, want *UnknownTargetError", err)
	}
}

func TestDefaultFramework(t *testing.T) {
	tests := map[Target]string{
		HTML:   "",
		Go:     "fiber",
		Java:   "spring",
		Kotlin: "compose",
		Swift:  "swiftui",
		Python: "fastapi",
		Rust:   "axum",
		Node:   "express",
	}
	for target, want := range tests {
		if got := target.DefaultFramework(); got != want {
			t.Errorf("%s.DefaultFramework() = %q, want %q", target, got, want)
		}
	}
}

func TestValidFramework(t *testing.T) {
	if !Go.ValidFramework("fiber") || !Go.ValidFramework("") {
		t.Error("go should accept fiber and the empty default")
	}
	if Go.ValidFramework("spring") {
		t.Error("go accepted spring")
	}
	if HTML.ValidFramework("fiber") {
		t.Error("html accepted a framework")
	}
}

func TestExt(t *testing.T) {
	tests := map[Target]string{
		HTML: ".html", Go: ".go", Java: ".java", Kotlin: ".kt",
		Swift: ".swift", Python: ".py", Rust: ".rs", Node: ".js",
	}
	for target, want := range tests {
		if got := target.Ext(); got != want {
			t.Errorf("%s.Ext() = %q, want %q", target, got, want)
		}
	}
	if Target("").Ext() != "" {
		t.Error("zero target has an extension")
	}
}

func TestRegistry(t *testing.T) {
	gen := &fakeGen{name: "rust-axum", out: []byte("fn main() {}")}
	Register(Rust, "axum", gen)

	got, err := Lookup(Rust, "axum")
	if err != nil || got != gen {
		t.Fatalf("Lookup(rust, axum) = %v, %v", got, err)
	}

	// the empty framework resolves through the target default
	got, err = Lookup(Rust, "")
	if err != nil || got != gen {
		t.Fatalf("Lookup(rust, \"\") = %v, %v, want the default slot", got, err)
	}

	_, err = Lookup(Java, "spring")
	var ngerr *NoGeneratorError
	if !errors.As(err, &ngerr) {
		t.Fatalf("Lookup(java, spring) = %v, want *NoGeneratorError", err)
	}
	if ngerr.Target != Java || ngerr.Framework != "spring" {
		t.Errorf("error = %+v, want java/spring", ngerr)
	}

	_, err = Lookup(Rust, "rocket")
	var uferr *UnknownFrameworkError
	if !errors.As(err, &uferr) {
		t.Fatalf("Lookup(rust, rocket) = %v, want *UnknownFrameworkError", err)
	}
}

func TestRegisterDefaultSlot(t *testing.T) {
	gen := &fakeGen{name: "node-express"}
	Register(Node, "", gen)
	got, err := Lookup(Node, "express")
	if err != nil || got != gen {
		t.Errorf("Lookup(node, express) = %v, %v, want the generator registered on the default slot", got, err)
	}
}
