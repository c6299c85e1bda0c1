package lexer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/droe-lang/droe-sub001/internal/source"
	"github.com/droe-lang/droe-sub001/internal/tokens"
)

// Error is a tokenization failure. The parser wraps it into its
// fail-fast ParseError so callers see a single error shape.
type Error struct {
	Message string
	Pos     source.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

type regexHandler func(lex *Lexer, match string)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// Lexer scans droe source into a flat token slice. Newlines are
// significant and come through as tokens; comments are kept so tooling
// can see them; the parser skips both.
type Lexer struct {
	src      string
	offset   int
	line     int
	column   int
	tokens   []tokens.Token
	patterns []regexPattern
	err      *Error
}

// Tokenize scans source into tokens ending with an EOF token. Lines
// and columns are 1-based.
func Tokenize(src string) ([]tokens.Token, error) {
	lex := newLexer(src)
	lex.run()
	if lex.err != nil {
		return nil, lex.err
	}
	return lex.tokens, nil
}

func newLexer(src string) *Lexer {
	lex := &Lexer{src: src, line: 1, column: 1}
	lex.patterns = []regexPattern{
		{regexp.MustCompile(`^\r?\n`), newlineHandler},
		{regexp.MustCompile(`^[ \t]+`), skipHandler},
		{regexp.MustCompile(`^#[^\n]*`), commentHandler},
		{regexp.MustCompile(`^@[A-Za-z_][A-Za-z0-9_]*`), annotationHandler},
		{regexp.MustCompile(`^"(?:\\.|[^"\\\n])*"`), stringHandler},
		{regexp.MustCompile(`^"`), unterminatedHandler},
		{regexp.MustCompile(`^\d+\.\d+`), defaultHandler(tokens.DECIMAL_TOKEN)},
		{regexp.MustCompile(`^\d+`), defaultHandler(tokens.INT_TOKEN)},
		{regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`), wordHandler},
		{regexp.MustCompile(`^==`), defaultHandler(tokens.EQUALS_TOKEN)},
		{regexp.MustCompile(`^!=`), defaultHandler(tokens.NOT_EQUALS_TOKEN)},
		{regexp.MustCompile(`^>=`), defaultHandler(tokens.GREATER_EQ_TOKEN)},
		{regexp.MustCompile(`^<=`), defaultHandler(tokens.LESS_EQ_TOKEN)},
		{regexp.MustCompile(`^>`), defaultHandler(tokens.GREATER_TOKEN)},
		{regexp.MustCompile(`^<`), defaultHandler(tokens.LESS_TOKEN)},
		{regexp.MustCompile(`^\+`), defaultHandler(tokens.PLUS_TOKEN)},
		{regexp.MustCompile(`^-`), defaultHandler(tokens.MINUS_TOKEN)},
		{regexp.MustCompile(`^\*`), defaultHandler(tokens.STAR_TOKEN)},
		{regexp.MustCompile(`^/`), defaultHandler(tokens.SLASH_TOKEN)},
		{regexp.MustCompile(`^\(`), defaultHandler(tokens.OPEN_PAREN_TOKEN)},
		{regexp.MustCompile(`^\)`), defaultHandler(tokens.CLOSE_PAREN_TOKEN)},
		{regexp.MustCompile(`^,`), defaultHandler(tokens.COMMA_TOKEN)},
		{regexp.MustCompile(`^\.`), defaultHandler(tokens.DOT_TOKEN)},
	}
	return lex
}

func (lex *Lexer) run() {
	for lex.err == nil && lex.offset < len(lex.src) {
		if !lex.step() {
			lex.fail(fmt.Sprintf("unexpected character %q", lex.rest()[0]))
		}
	}
	if lex.err == nil {
		lex.push(tokens.Token{Kind: tokens.EOF_TOKEN, Pos: lex.pos()})
	}
}

func (lex *Lexer) step() bool {
	rest := lex.rest()
	for _, pat := range lex.patterns {
		if match := pat.regex.FindString(rest); match != "" {
			pat.handler(lex, match)
			return true
		}
	}
	return false
}

func (lex *Lexer) rest() string {
	return lex.src[lex.offset:]
}

func (lex *Lexer) pos() source.Position {
	return source.NewPosition(lex.line, lex.column)
}

func (lex *Lexer) push(tok tokens.Token) {
	lex.tokens = append(lex.tokens, tok)
}

func (lex *Lexer) fail(msg string) {
	lex.err = &Error{Message: msg, Pos: lex.pos()}
}

// advance moves the cursor past text, keeping line/column in step.
func (lex *Lexer) advance(text string) {
	lex.offset += len(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lex.line++
			lex.column = 1
		} else {
			lex.column++
		}
	}
}

func defaultHandler(kind tokens.TOKEN) regexHandler {
	return func(lex *Lexer, match string) {
		lex.push(tokens.Token{Kind: kind, Value: match, Pos: lex.pos()})
		lex.advance(match)
	}
}

func newlineHandler(lex *Lexer, match string) {
	lex.push(tokens.Token{Kind: tokens.NEWLINE_TOKEN, Value: "\n", Pos: lex.pos()})
	lex.advance(match)
}

func skipHandler(lex *Lexer, match string) {
	lex.advance(match)
}

func commentHandler(lex *Lexer, match string) {
	lex.push(tokens.Token{Kind: tokens.COMMENT_TOKEN, Value: strings.TrimPrefix(match, "#"), Pos: lex.pos()})
	lex.advance(match)
}

func annotationHandler(lex *Lexer, match string) {
	lex.push(tokens.Token{Kind: tokens.ANNOTATION_TOKEN, Value: match[1:], Pos: lex.pos()})
	lex.advance(match)
}

func stringHandler(lex *Lexer, match string) {
	lex.push(tokens.Token{Kind: tokens.STRING_TOKEN, Value: unescape(match), Pos: lex.pos()})
	lex.advance(match)
}

func unterminatedHandler(lex *Lexer, _ string) {
	lex.fail("unterminated string literal")
}

// endCloser matches the word following "end" so compound closers like
// "end module" come out as one token.
var endCloser = regexp.MustCompile(`^[ \t]+([a-z]+)`)

func wordHandler(lex *Lexer, match string) {
	pos := lex.pos()
	kind := tokens.Lookup(match)
	if kind == tokens.END_TOKEN {
		if m := endCloser.FindStringSubmatch(lex.rest()[len(match):]); m != nil {
			if closer, ok := tokens.CloserFor(m[1]); ok {
				lex.push(tokens.Token{Kind: closer, Value: match + " " + m[1], Pos: pos})
				lex.advance(match + m[0])
				return
			}
		}
	}
	lex.push(tokens.Token{Kind: kind, Value: match, Pos: pos})
	lex.advance(match)
}

// unescape strips the surrounding quotes and resolves the escapes the
// language defines: \" \\ \n \t. Unknown escapes pass through as-is.
func unescape(quoted string) string {
	body := quoted[1 : len(quoted)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
