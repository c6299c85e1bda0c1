package tokens

import (
	"github.com/droe-lang/droe-sub001/internal/source"
)

type TOKEN string

const (
	EOF_TOKEN     TOKEN = "eof"
	NEWLINE_TOKEN TOKEN = "newline"
	COMMENT_TOKEN TOKEN = "comment"

	// literals and names
	IDENTIFIER_TOKEN TOKEN = "identifier"
	STRING_TOKEN     TOKEN = "string"
	INT_TOKEN        TOKEN = "int"
	DECIMAL_TOKEN    TOKEN = "decimal"
	ANNOTATION_TOKEN TOKEN = "annotation"

	// structural keywords
	MODULE_TOKEN   TOKEN = "module"
	DATA_TOKEN     TOKEN = "data"
	LAYOUT_TOKEN   TOKEN = "layout"
	FORM_TOKEN     TOKEN = "form"
	SCREEN_TOKEN   TOKEN = "screen"
	FRAGMENT_TOKEN TOKEN = "fragment"
	ACTION_TOKEN   TOKEN = "action"
	TASK_TOKEN     TOKEN = "task"

	// compound closers, produced by the lexer as single tokens
	END_TOKEN          TOKEN = "end"
	END_MODULE_TOKEN   TOKEN = "end module"
	END_DATA_TOKEN     TOKEN = "end data"
	END_LAYOUT_TOKEN   TOKEN = "end layout"
	END_FORM_TOKEN     TOKEN = "end form"
	END_SCREEN_TOKEN   TOKEN = "end screen"
	END_FRAGMENT_TOKEN TOKEN = "end fragment"
	END_ACTION_TOKEN   TOKEN = "end action"
	END_TASK_TOKEN     TOKEN = "end task"
	END_IF_TOKEN       TOKEN = "end if"
	END_WHILE_TOKEN    TOKEN = "end while"
	END_FOR_TOKEN      TOKEN = "end for"

	// statement keywords
	DISPLAY_TOKEN TOKEN = "display"
	SET_TOKEN     TOKEN = "set"
	TO_TOKEN      TOKEN = "to"
	IS_TOKEN      TOKEN = "is"
	INCLUDE_TOKEN TOKEN = "include"
	IF_TOKEN      TOKEN = "if"
	ELSE_TOKEN    TOKEN = "else"
	WHILE_TOKEN   TOKEN = "while"
	FOR_TOKEN     TOKEN = "for"
	EACH_TOKEN    TOKEN = "each"
	IN_TOKEN      TOKEN = "in"
	RETURN_TOKEN  TOKEN = "return"
	WITH_TOKEN    TOKEN = "with"
	GIVES_TOKEN   TOKEN = "gives"

	// database and api keywords
	DB_TOKEN     TOKEN = "db"
	CALL_TOKEN   TOKEN = "call"
	FETCH_TOKEN  TOKEN = "fetch"
	UPDATE_TOKEN TOKEN = "update"
	DELETE_TOKEN TOKEN = "delete"
	SERVE_TOKEN  TOKEN = "serve"

	// ui component keywords
	TITLE_TOKEN    TOKEN = "title"
	TEXT_TOKEN     TOKEN = "text"
	INPUT_TOKEN    TOKEN = "input"
	TEXTAREA_TOKEN TOKEN = "textarea"
	DROPDOWN_TOKEN TOKEN = "dropdown"
	TOGGLE_TOKEN   TOKEN = "toggle"
	CHECKBOX_TOKEN TOKEN = "checkbox"
	RADIO_TOKEN    TOKEN = "radio"
	BUTTON_TOKEN   TOKEN = "button"
	IMAGE_TOKEN    TOKEN = "image"
	VIDEO_TOKEN    TOKEN = "video"
	AUDIO_TOKEN    TOKEN = "audio"
	SLOT_TOKEN     TOKEN = "slot"

	// type phrase keywords
	LIST_TOKEN  TOKEN = "list"
	GROUP_TOKEN TOKEN = "group"
	OF_TOKEN    TOKEN = "of"

	// boolean and logical keywords
	TRUE_TOKEN  TOKEN = "true"
	FALSE_TOKEN TOKEN = "false"
	YES_TOKEN   TOKEN = "yes"
	NO_TOKEN    TOKEN = "no"
	AND_TOKEN   TOKEN = "and"
	OR_TOKEN    TOKEN = "or"
	NOT_TOKEN   TOKEN = "not"

	// operators and punctuation
	PLUS_TOKEN        TOKEN = "+"
	MINUS_TOKEN       TOKEN = "-"
	STAR_TOKEN        TOKEN = "*"
	SLASH_TOKEN       TOKEN = "/"
	EQUALS_TOKEN      TOKEN = "=="
	NOT_EQUALS_TOKEN  TOKEN = "!="
	GREATER_EQ_TOKEN  TOKEN = ">="
	LESS_EQ_TOKEN     TOKEN = "<="
	GREATER_TOKEN     TOKEN = ">"
	LESS_TOKEN        TOKEN = "<"
	OPEN_PAREN_TOKEN  TOKEN = "("
	CLOSE_PAREN_TOKEN TOKEN = ")"
	COMMA_TOKEN       TOKEN = ","
	DOT_TOKEN         TOKEN = "."
)

// Token is a single lexeme with its 1-based source position.
type Token struct {
	Kind  TOKEN
	Value string
	Pos   source.Position
}

func (t Token) String() string {
	return string(t.Kind) + " (" + t.Value + ")"
}

var keywords = map[string]TOKEN{
	"module":   MODULE_TOKEN,
	"data":     DATA_TOKEN,
	"layout":   LAYOUT_TOKEN,
	"form":     FORM_TOKEN,
	"screen":   SCREEN_TOKEN,
	"fragment": FRAGMENT_TOKEN,
	"action":   ACTION_TOKEN,
	"task":     TASK_TOKEN,
	"end":      END_TOKEN,
	"display":  DISPLAY_TOKEN,
	"set":      SET_TOKEN,
	"to":       TO_TOKEN,
	"is":       IS_TOKEN,
	"include":  INCLUDE_TOKEN,
	"if":       IF_TOKEN,
	"else":     ELSE_TOKEN,
	"while":    WHILE_TOKEN,
	"for":      FOR_TOKEN,
	"each":     EACH_TOKEN,
	"in":       IN_TOKEN,
	"return":   RETURN_TOKEN,
	"with":     WITH_TOKEN,
	"gives":    GIVES_TOKEN,
	"db":       DB_TOKEN,
	"call":     CALL_TOKEN,
	"fetch":    FETCH_TOKEN,
	"update":   UPDATE_TOKEN,
	"delete":   DELETE_TOKEN,
	"serve":    SERVE_TOKEN,
	"title":    TITLE_TOKEN,
	"text":     TEXT_TOKEN,
	"input":    INPUT_TOKEN,
	"textarea": TEXTAREA_TOKEN,
	"dropdown": DROPDOWN_TOKEN,
	"toggle":   TOGGLE_TOKEN,
	"checkbox": CHECKBOX_TOKEN,
	"radio":    RADIO_TOKEN,
	"button":   BUTTON_TOKEN,
	"image":    IMAGE_TOKEN,
	"video":    VIDEO_TOKEN,
	"audio":    AUDIO_TOKEN,
	"slot":     SLOT_TOKEN,
	"list":     LIST_TOKEN,
	"group":    GROUP_TOKEN,
	"of":       OF_TOKEN,
	"true":     TRUE_TOKEN,
	"false":    FALSE_TOKEN,
	"yes":      YES_TOKEN,
	"no":       NO_TOKEN,
	"and":      AND_TOKEN,
	"or":       OR_TOKEN,
	"not":      NOT_TOKEN,
}

// closers maps the word after "end" to the compound closing token.
var closers = map[string]TOKEN{
	"module":   END_MODULE_TOKEN,
	"data":     END_DATA_TOKEN,
	"layout":   END_LAYOUT_TOKEN,
	"form":     END_FORM_TOKEN,
	"screen":   END_SCREEN_TOKEN,
	"fragment": END_FRAGMENT_TOKEN,
	"action":   END_ACTION_TOKEN,
	"task":     END_TASK_TOKEN,
	"if":       END_IF_TOKEN,
	"while":    END_WHILE_TOKEN,
	"for":      END_FOR_TOKEN,
}

// Lookup resolves a bare word to its keyword token, or IDENTIFIER_TOKEN
// when the word is not reserved.
func Lookup(word string) TOKEN {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return IDENTIFIER_TOKEN
}

// CloserFor resolves the word following "end" to a compound closing
// token. It reports false for words that do not close anything.
func CloserFor(word string) (TOKEN, bool) {
	kind, ok := closers[word]
	return kind, ok
}

var components = map[TOKEN]bool{
	TITLE_TOKEN:    true,
	TEXT_TOKEN:     true,
	INPUT_TOKEN:    true,
	TEXTAREA_TOKEN: true,
	DROPDOWN_TOKEN: true,
	TOGGLE_TOKEN:   true,
	CHECKBOX_TOKEN: true,
	RADIO_TOKEN:    true,
	BUTTON_TOKEN:   true,
	IMAGE_TOKEN:    true,
	VIDEO_TOKEN:    true,
	AUDIO_TOKEN:    true,
	SLOT_TOKEN:     true,
}

// IsComponent reports whether the token opens a UI leaf component.
func (t TOKEN) IsComponent() bool {
	return components[t]
}

var structural = map[TOKEN]bool{
	MODULE_TOKEN:   true,
	DATA_TOKEN:     true,
	LAYOUT_TOKEN:   true,
	FORM_TOKEN:     true,
	SCREEN_TOKEN:   true,
	FRAGMENT_TOKEN: true,
}

// IsStructural reports whether the token opens a named block closed by
// a matching "end" keyword.
func (t TOKEN) IsStructural() bool {
	return structural[t]
}

// IsLiteral reports whether the token is usable as a component
// argument or expression literal without further parsing.
func (t TOKEN) IsLiteral() bool {
	switch t {
	case STRING_TOKEN, INT_TOKEN, DECIMAL_TOKEN, TRUE_TOKEN, FALSE_TOKEN, YES_TOKEN, NO_TOKEN:
		return true
	}
	return false
}

// IsLayout reports whether the parser skips the token between
// statements: newlines separate statements, comments carry no syntax.
func (t TOKEN) IsLayout() bool {
	return t == NEWLINE_TOKEN || t == COMMENT_TOKEN
}
