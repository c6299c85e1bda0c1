package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/frontend/parser"
	"github.com/droe-lang/droe-sub001/internal/resolver"
	"github.com/droe-lang/droe-sub001/internal/target"
)

type fakeGen struct {
	name  string
	out   []byte
	calls int
}

func (g *fakeGen) Name() string { return g.name }

func (g *fakeGen) Generate(*ast.Program) ([]byte, error) {
	g.calls++
	return g.out, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompileWithModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lib.droe", `display "from lib"`)
	path := filepath.Join(dir, "main.droe")

	res, err := CompileWithModules("include lib\ndisplay \"main\"", path, "", "")
	if err != nil {
		t.Fatalf("CompileWithModules failed: %v", err)
	}
	if res.BuildID == "" {
		t.Error("BuildID is empty")
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v, want none", res.Diagnostics)
	}
	if len(res.Program.Statements) != 2 {
		t.Fatalf("merged program has %d statements, want 2", len(res.Program.Statements))
	}
	first := res.Program.Statements[0].(*ast.DisplayStatement).Value.(*ast.Literal)
	if first.Value != "from lib" {
		t.Errorf("first statement = %q, want the included one", first.Value)
	}
	if res.Artifact != nil || res.Target != "" {
		t.Error("compile without a target produced an artifact")
	}
}

func TestCompileParseError(t *testing.T) {
	res, err := CompileWithModules("set to 5", "main.droe", "", "")
	if res != nil {
		t.Error("parse failure returned a result")
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *parser.ParseError", err)
	}
	if perr.Line != 1 || perr.Column != 5 {
		t.Errorf("error at %d:%d, want 1:5", perr.Line, perr.Column)
	}
}

func TestCompileMissingInclude(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.droe")
	_, err := CompileWithModules("include nowhere", path, "", "")
	var nferr *resolver.FileNotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("got %v, want *resolver.FileNotFoundError", err)
	}
}

func TestCompileMetadataTarget(t *testing.T) {
	gen := &fakeGen{name: "html", out: []byte("<html></html>")}
	target.Register(target.HTML, "", gen)

	res, err := CompileWithModules("@target html\ndisplay \"hi\"", "main.droe", "", "")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if res.Target != target.HTML {
		t.Errorf("target = %q, want html", res.Target)
	}
	if string(res.Artifact) != "<html></html>" {
		t.Errorf("artifact = %q", res.Artifact)
	}
	if gen.calls != 1 {
		t.Errorf("generator ran %d times, want 1", gen.calls)
	}
}

func TestCompileExplicitTargetBeatsMetadata(t *testing.T) {
	gen := &fakeGen{name: "python-fastapi", out: []byte("app = FastAPI()")}
	target.Register(target.Python, "fastapi", gen)

	res, err := CompileWithModules("@target html\ndisplay \"hi\"", "main.droe", "python", "")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if res.Target != target.Python {
		t.Errorf("target = %q, want python (option over annotation)", res.Target)
	}
	if res.Framework != "fastapi" {
		t.Errorf("framework = %q, want the target default", res.Framework)
	}
	if res.Artifact == nil {
		t.Error("no artifact produced")
	}
}

func TestCompileUnknownTarget(t *testing.T) {
	res, err := CompileWithModules(`display "hi"`, "main.droe", "cobol", "")
	var uerr *target.UnknownTargetError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, want *target.UnknownTargetError", err)
	}
	if res == nil || res.Program == nil {
		t.Error("front-end result lost on target error")
	}
}

func TestCompileNoGenerator(t *testing.T) {
	res, err := CompileWithModules(`display "hi"`, "main.droe", "java", "")
	var ngerr *target.NoGeneratorError
	if !errors.As(err, &ngerr) {
		t.Fatalf("got %v, want *target.NoGeneratorError", err)
	}
	if res == nil || len(res.Diagnostics) != 0 {
		t.Error("front-end result lost on lookup error")
	}
}

// Error diagnostics block generation but not the front end.
func TestCompileBlockedOnErrors(t *testing.T) {
	gen := &fakeGen{name: "html", out: []byte("x")}
	target.Register(target.HTML, "", gen)
	before := gen.calls

	res, err := CompileWithModules("@target html\ndisplay missing", "main.droe", "", "")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want the undefined name", res.Diagnostics)
	}
	if res.Artifact != nil || gen.calls != before {
		t.Error("generation ran despite error diagnostics")
	}
}

func TestCompileStrictModeBlocksOnWarnings(t *testing.T) {
	gen := &fakeGen{name: "html", out: []byte("x")}
	target.Register(target.HTML, "", gen)

	opts := &Options{
		Source:     "@target html\nu is Customer",
		Path:       "main.droe",
		StrictMode: true,
	}
	res, err := Compile(opts)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want one warning", res.Diagnostics)
	}
	if res.Artifact != nil {
		t.Error("strict mode generated despite warnings")
	}

	// without strict mode the same program generates
	opts.StrictMode = false
	res, err = Compile(opts)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if res.Artifact == nil {
		t.Error("warnings blocked generation outside strict mode")
	}
}

func TestCheckReadsFromPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.droe", "display missing\ndisplay gone")

	res, err := Check(&Options{Path: path})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(res.Diagnostics) != 2 {
		t.Errorf("got %d diagnostics, want 2", len(res.Diagnostics))
	}

	_, err = Check(&Options{Path: filepath.Join(dir, "missing.droe")})
	if err == nil {
		t.Error("Check on a missing file succeeded")
	}
}
