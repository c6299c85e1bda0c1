package checker

import (
	"strings"
	"testing"

	"github.com/droe-lang/droe-sub001/internal/diagnostics"
	"github.com/droe-lang/droe-sub001/internal/frontend/parser"
	"github.com/droe-lang/droe-sub001/internal/types"
)

func check(t *testing.T, src string) []*diagnostics.Diagnostic {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return Check(prog)
}

func messages(diags []*diagnostics.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestCheckCleanPrograms(t *testing.T) {
	cleanPrograms := []string{
		`display "Hello World"`,
		"x is int\nset x to 5",
		"set x to 1\ndisplay x",
		"db create users",
		`serve get "/health"`,
		"action greet\n  display \"hi\"\nend action\ngreet()",
		"action add with a, b gives int\n  return a + b\nend action",
		"module utils\n  action add with a, b gives int\n    return a + b\n  end action\nend module\nutils.add(1, 2)",
		"items is list of text\nfor each item in items\n  display item\nend for",
		"set x to 1\nif x > 0\n  display x\nend if",
		"data User\n  name is text required\nend data",
		"screen Home\n  title \"Welcome\"\nend screen",
	}

	for _, src := range cleanPrograms {
		t.Run(src, func(t *testing.T) {
			if diags := check(t, src); len(diags) != 0 {
				t.Errorf("check(%q) = %v, want no diagnostics", src, messages(diags))
			}
		})
	}
}

// The checker never stops at the first finding: every undefined name
// produces its own diagnostic.
func TestCheckCollectsEveryFinding(t *testing.T) {
	diags := check(t, "display first\ndisplay second")
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), messages(diags))
	}
	if diags[0].Message != "Undefined variable or action: first" {
		t.Errorf("diagnostic 0 = %q", diags[0].Message)
	}
	if diags[1].Message != "Undefined variable or action: second" {
		t.Errorf("diagnostic 1 = %q", diags[1].Message)
	}
	for i, d := range diags {
		if d.Severity != diagnostics.Error {
			t.Errorf("diagnostic %d severity = %s, want error", i, d.Severity)
		}
		if d.Source != "droe-check" {
			t.Errorf("diagnostic %d source = %q, want droe-check", i, d.Source)
		}
		if d.Line != i+1 {
			t.Errorf("diagnostic %d at line %d, want %d", i, d.Line, i+1)
		}
	}
}

func TestCheckUndefinedInvocation(t *testing.T) {
	diags := check(t, "missing()")
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "Undefined variable or action: missing") {
		t.Fatalf("diagnostics = %v", messages(diags))
	}

	diags = check(t, "module utils\nend module\nutils.nope()")
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "utils.nope") {
		t.Fatalf("diagnostics = %v, want one about utils.nope", messages(diags))
	}
}

// Inside a module, a bare call resolves against the module's own
// actions before failing.
func TestCheckModuleLocalInvocation(t *testing.T) {
	src := "module app\n  action helper\n    display \"h\"\n  end action\n  action main\n    helper()\n  end action\nend module"
	if diags := check(t, src); len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", messages(diags))
	}
}

func TestCheckInvocationArgs(t *testing.T) {
	src := "action greet\n  display \"hi\"\nend action\ngreet(oops)"
	diags := check(t, src)
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "oops") {
		t.Errorf("diagnostics = %v, want one about oops", messages(diags))
	}
}

func TestCheckScopes(t *testing.T) {
	// names declared inside a body stay inside it
	diags := check(t, "set x to 1\nif x > 0\n  set y to 2\nend if\ndisplay y")
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "Undefined variable or action: y") {
		t.Fatalf("diagnostics = %v, want undefined y", messages(diags))
	}

	// loop variables exist only in the loop body
	diags = check(t, "items is list of text\nfor each item in items\n  display item\nend for\ndisplay item")
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "item") {
		t.Fatalf("diagnostics = %v, want undefined item", messages(diags))
	}

	// action params exist only in the action body
	diags = check(t, "action add with a, b gives int\n  return a + b\nend action\ndisplay a")
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "Undefined variable or action: a") {
		t.Fatalf("diagnostics = %v, want undefined a", messages(diags))
	}
}

func TestCheckDuplicateDeclaration(t *testing.T) {
	diags := check(t, "x is int\nx is text")
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "already declared") {
		t.Fatalf("diagnostics = %v, want a redeclaration error", messages(diags))
	}
	if diags[0].Line != 2 {
		t.Errorf("diagnostic at line %d, want 2", diags[0].Line)
	}
}

func TestCheckUnknownTypeWarning(t *testing.T) {
	diags := check(t, "u is Customer")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), messages(diags))
	}
	if diags[0].Severity != diagnostics.Warning {
		t.Errorf("severity = %s, want warning", diags[0].Severity)
	}
	if !strings.Contains(diags[0].Message, "Unknown type 'Customer'") {
		t.Errorf("message = %q", diags[0].Message)
	}
}

func TestCheckLiteralFlow(t *testing.T) {
	tests := []struct {
		name   string
		source string
		errors int
	}{
		{"int_to_int", "x is int\nset x to 5", 0},
		{"decimal_to_int", "x is int\nset x to 1.5", 0},
		{"text_to_date", "d is date\nset d to \"2024-01-01\"", 0},
		{"text_to_int", "x is int\nset x to \"five\"", 1},
		{"boolean_to_text", "s is text\nset s to true", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := check(t, tt.source)
			if len(diags) != tt.errors {
				t.Errorf("diagnostics = %v, want %d", messages(diags), tt.errors)
			}
			if tt.errors > 0 && !strings.Contains(diags[0].Message, "Type mismatch") {
				t.Errorf("message = %q, want a type mismatch", diags[0].Message)
			}
		})
	}
}

// Assignments register their target without inferring a type, so a
// later assignment of any literal is fine.
func TestCheckAssignmentNoInference(t *testing.T) {
	if diags := check(t, "set x to 5\nset x to \"now text\""); len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", messages(diags))
	}
}

func TestSignatureCollection(t *testing.T) {
	prog, err := parser.Parse("action top gives int\nend action\ntask sweep\nend task\nmodule utils\n  action add with a, b gives decimal\n    return a + b\n  end action\nend module")
	if err != nil {
		t.Fatal(err)
	}
	c := New()
	if diags := c.Check(prog); len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", messages(diags))
	}

	tests := []struct {
		name string
		want types.VariableType
	}{
		{"top", types.Int},
		{"sweep", types.Unknown},
		{"utils.add", types.Decimal},
	}
	for _, tt := range tests {
		got, ok := c.ReturnType(tt.name)
		if !ok || got != tt.want {
			t.Errorf("ReturnType(%s) = %s, %v, want %s", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := c.ReturnType("add"); ok {
		t.Error("module action leaked into the bare namespace")
	}
}
