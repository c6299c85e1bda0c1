package lexer

import (
	"errors"
	"testing"

	"github.com/droe-lang/droe-sub001/internal/tokens"
)

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		source string
		want   []tokens.TOKEN
	}{
		{`display "Hello World"`, []tokens.TOKEN{tokens.DISPLAY_TOKEN, tokens.STRING_TOKEN, tokens.EOF_TOKEN}},
		{`set x to 5`, []tokens.TOKEN{tokens.SET_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.TO_TOKEN, tokens.INT_TOKEN, tokens.EOF_TOKEN}},
		{`price is 3.99`, []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.IS_TOKEN, tokens.DECIMAL_TOKEN, tokens.EOF_TOKEN}},
		{`items is list of text`, []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.IS_TOKEN, tokens.LIST_TOKEN, tokens.OF_TOKEN, tokens.TEXT_TOKEN, tokens.EOF_TOKEN}},
		{`active is yes`, []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.IS_TOKEN, tokens.YES_TOKEN, tokens.EOF_TOKEN}},
		{`@target html`, []tokens.TOKEN{tokens.ANNOTATION_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.EOF_TOKEN}},
		{`# note`, []tokens.TOKEN{tokens.COMMENT_TOKEN, tokens.EOF_TOKEN}},
		{`x >= 10 and y != 2`, []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.GREATER_EQ_TOKEN, tokens.INT_TOKEN, tokens.AND_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.NOT_EQUALS_TOKEN, tokens.INT_TOKEN, tokens.EOF_TOKEN}},
		{`utils.add(1, 2)`, []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.DOT_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.OPEN_PAREN_TOKEN, tokens.INT_TOKEN, tokens.COMMA_TOKEN, tokens.INT_TOKEN, tokens.CLOSE_PAREN_TOKEN, tokens.EOF_TOKEN}},
		{`db create users`, []tokens.TOKEN{tokens.DB_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.EOF_TOKEN}},
		{"display \"a\"\ndisplay \"b\"", []tokens.TOKEN{tokens.DISPLAY_TOKEN, tokens.STRING_TOKEN, tokens.NEWLINE_TOKEN, tokens.DISPLAY_TOKEN, tokens.STRING_TOKEN, tokens.EOF_TOKEN}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			toks, err := Tokenize(tt.source)
			if err != nil {
				t.Fatalf("Tokenize(%q) failed: %v", tt.source, err)
			}
			if len(toks) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d: %v", tt.source, len(toks), len(tt.want), toks)
			}
			for i, tok := range toks {
				if tok.Kind != tt.want[i] {
					t.Errorf("token %d = %s, want %s", i, tok.Kind, tt.want[i])
				}
			}
		})
	}
}

func TestCompoundClosers(t *testing.T) {
	tests := []struct {
		source string
		want   tokens.TOKEN
	}{
		{"end module", tokens.END_MODULE_TOKEN},
		{"end data", tokens.END_DATA_TOKEN},
		{"end layout", tokens.END_LAYOUT_TOKEN},
		{"end form", tokens.END_FORM_TOKEN},
		{"end screen", tokens.END_SCREEN_TOKEN},
		{"end fragment", tokens.END_FRAGMENT_TOKEN},
		{"end action", tokens.END_ACTION_TOKEN},
		{"end task", tokens.END_TASK_TOKEN},
		{"end if", tokens.END_IF_TOKEN},
		{"end while", tokens.END_WHILE_TOKEN},
		{"end for", tokens.END_FOR_TOKEN},
		{"end  if", tokens.END_IF_TOKEN}, // extra spaces still fold
	}

	for _, tt := range tests {
		toks, err := Tokenize(tt.source)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", tt.source, err)
		}
		if len(toks) != 2 {
			t.Fatalf("Tokenize(%q) = %d tokens, want closer + EOF", tt.source, len(toks))
		}
		if toks[0].Kind != tt.want {
			t.Errorf("Tokenize(%q)[0] = %s, want %s", tt.source, toks[0].Kind, tt.want)
		}
	}

	// "end" followed by a non-closing word stays two tokens, and
	// "endif" is one plain identifier
	toks, err := Tokenize("end game")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Kind != tokens.END_TOKEN || toks[1].Kind != tokens.IDENTIFIER_TOKEN {
		t.Errorf(`Tokenize("end game") = %s %s, want end + identifier`, toks[0].Kind, toks[1].Kind)
	}
	toks, err = Tokenize("endif")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Kind != tokens.IDENTIFIER_TOKEN {
		t.Errorf(`Tokenize("endif")[0] = %s, want identifier`, toks[0].Kind)
	}
}

func TestTokenValues(t *testing.T) {
	tests := []struct {
		source string
		index  int
		want   string
	}{
		{`display "Hello World"`, 1, "Hello World"},
		{`@target html`, 0, "target"},
		{`# a note`, 0, " a note"},
		{`end module`, 0, "end module"},
		{`count is 42`, 2, "42"},
		{`pi is 3.14`, 2, "3.14"},
	}

	for _, tt := range tests {
		toks, err := Tokenize(tt.source)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", tt.source, err)
		}
		if got := toks[tt.index].Value; got != tt.want {
			t.Errorf("Tokenize(%q)[%d].Value = %q, want %q", tt.source, tt.index, got, tt.want)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`"line1\nline2"`, "line1\nline2"},
		{`"tab\there"`, "tab\there"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`"odd\q"`, `odd\q`}, // unknown escapes pass through
		{`""`, ""},
	}

	for _, tt := range tests {
		toks, err := Tokenize(tt.source)
		if err != nil {
			t.Fatalf("Tokenize(%s) failed: %v", tt.source, err)
		}
		if toks[0].Kind != tokens.STRING_TOKEN {
			t.Fatalf("Tokenize(%s)[0] = %s, want string", tt.source, toks[0].Kind)
		}
		if toks[0].Value != tt.want {
			t.Errorf("Tokenize(%s).Value = %q, want %q", tt.source, toks[0].Value, tt.want)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	source := "module app\ndisplay \"hi\"\n"
	toks, err := Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	want := []struct {
		kind tokens.TOKEN
		line int
		col  int
	}{
		{tokens.MODULE_TOKEN, 1, 1},
		{tokens.IDENTIFIER_TOKEN, 1, 8},
		{tokens.NEWLINE_TOKEN, 1, 11},
		{tokens.DISPLAY_TOKEN, 2, 1},
		{tokens.STRING_TOKEN, 2, 9},
		{tokens.NEWLINE_TOKEN, 2, 13},
		{tokens.EOF_TOKEN, 3, 1},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Kind != w.kind || tok.Pos.Line != w.line || tok.Pos.Column != w.col {
			t.Errorf("token %d = %s at %s, want %s at %d:%d", i, tok.Kind, tok.Pos, w.kind, w.line, w.col)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	tests := []struct {
		source string
		line   int
		col    int
	}{
		{`display "oops`, 1, 9},
		{"display \"a\nb\"", 1, 9}, // strings do not span lines
		{"set x to 5\nset y to \"", 2, 10},
	}

	for _, tt := range tests {
		_, err := Tokenize(tt.source)
		if err == nil {
			t.Fatalf("Tokenize(%q) succeeded, want error", tt.source)
		}
		var lerr *Error
		if !errors.As(err, &lerr) {
			t.Fatalf("Tokenize(%q) returned %T, want *Error", tt.source, err)
		}
		if lerr.Message != "unterminated string literal" {
			t.Errorf("message = %q, want unterminated string literal", lerr.Message)
		}
		if lerr.Pos.Line != tt.line || lerr.Pos.Column != tt.col {
			t.Errorf("Tokenize(%q) error at %s, want %d:%d", tt.source, lerr.Pos, tt.line, tt.col)
		}
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("set x to 5;")
	if err == nil {
		t.Fatal("Tokenize succeeded, want error")
	}
	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("got %T, want *Error", err)
	}
	if lerr.Pos.Line != 1 || lerr.Pos.Column != 11 {
		t.Errorf("error at %s, want 1:11", lerr.Pos)
	}
}
