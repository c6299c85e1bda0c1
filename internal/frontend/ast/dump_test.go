package ast

import (
	"encoding/json"
	"testing"

	"github.com/droe-lang/droe-sub001/internal/source"
)

func TestDumpProgram(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&DisplayStatement{
				Value:    &Literal{Kind: StringLiteral, Value: "hi", Position: source.NewPosition(1, 9)},
				Position: source.NewPosition(1, 1),
			},
			&DatabaseStatement{Operation: "create", EntityName: "users", Position: source.NewPosition(2, 1)},
		},
		Position: source.NewPosition(1, 1),
	}

	m, ok := Dump(prog).(map[string]any)
	if !ok {
		t.Fatalf("Dump returned %T, want map", Dump(prog))
	}
	if m["kind"] != "Program" {
		t.Errorf("kind = %v, want Program", m["kind"])
	}
	stmts, ok := m["statements"].([]any)
	if !ok || len(stmts) != 2 {
		t.Fatalf("statements = %v, want 2 entries", m["statements"])
	}

	display := stmts[0].(map[string]any)
	if display["kind"] != "DisplayStatement" || display["line"] != 1 || display["column"] != 1 {
		t.Errorf("display dump = %v", display)
	}
	value := display["value"].(map[string]any)
	if value["kind"] != "Literal" || value["literal"] != "string" || value["value"] != "hi" {
		t.Errorf("literal dump = %v", value)
	}

	db := stmts[1].(map[string]any)
	if db["operation"] != "create" || db["entity"] != "users" {
		t.Errorf("database dump = %v", db)
	}

	if _, err := json.Marshal(m); err != nil {
		t.Errorf("dump is not JSON-safe: %v", err)
	}
}

func TestDumpOmitsUnknownPositions(t *testing.T) {
	m := Dump(&Identifier{Name: "x"}).(map[string]any)
	if _, ok := m["line"]; ok {
		t.Error("unknown position should not dump a line")
	}
	if m["name"] != "x" {
		t.Errorf("name = %v, want x", m["name"])
	}
}
