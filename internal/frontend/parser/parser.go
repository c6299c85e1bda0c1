// Package parser turns droe source into an ast.Program. It is a
// recursive-descent parser with single-token lookahead and two bounded
// lookahead scans; the first syntax error aborts the parse with a
// *ParseError. Collected, non-fatal findings are the checker's job,
// not the parser's.
package parser

import (
	"errors"
	"fmt"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/frontend/lexer"
	"github.com/droe-lang/droe-sub001/internal/source"
	"github.com/droe-lang/droe-sub001/internal/tokens"
)

type Parser struct {
	tokens  []tokens.Token
	cursor  int
	program *ast.Program
}

// Parse tokenizes and parses one droe source file.
func Parse(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		var lerr *lexer.Error
		if errors.As(err, &lerr) {
			return nil, &ParseError{Message: lerr.Message, Line: lerr.Pos.Line, Column: lerr.Pos.Column}
		}
		return nil, err
	}
	p := &Parser{tokens: toks}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	p.program = &ast.Program{Position: source.NewPosition(1, 1)}
	p.skipLayout()
	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		p.program.Statements = append(p.program.Statements, stmt)
		p.skipLayout()
	}
	return p.program, nil
}

// parseStatement dispatches on the leading token. Identifier-led lines
// need the two lookahead scans: "NAME is ..." declares, "NAME(" or
// "NAME.name(" invokes; anything else is not a droe statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.peek()
	switch {
	case tok.Kind == tokens.INCLUDE_TOKEN:
		return p.parseInclude()
	case tok.Kind == tokens.ANNOTATION_TOKEN:
		return p.parseAnnotation()
	case tok.Kind == tokens.MODULE_TOKEN:
		return p.parseModule()
	case tok.Kind == tokens.DATA_TOKEN:
		return p.parseData()
	case tok.Kind == tokens.LAYOUT_TOKEN:
		return p.parseLayout()
	case tok.Kind == tokens.FORM_TOKEN:
		return p.parseForm()
	case tok.Kind == tokens.SCREEN_TOKEN:
		return p.parseScreen()
	case tok.Kind == tokens.FRAGMENT_TOKEN:
		return p.parseFragment()
	case tok.Kind == tokens.ACTION_TOKEN:
		return p.parseAction()
	case tok.Kind == tokens.TASK_TOKEN:
		return p.parseTask()
	case tok.Kind.IsComponent():
		return p.parseComponent()
	case tok.Kind == tokens.DB_TOKEN:
		return p.parseDatabase()
	case tok.Kind == tokens.CALL_TOKEN, tok.Kind == tokens.FETCH_TOKEN,
		tok.Kind == tokens.UPDATE_TOKEN, tok.Kind == tokens.DELETE_TOKEN:
		return p.parseApiCall()
	case tok.Kind == tokens.SERVE_TOKEN:
		return p.parseServe()
	case tok.Kind == tokens.DISPLAY_TOKEN:
		return p.parseDisplay()
	case tok.Kind == tokens.SET_TOKEN:
		return p.parseAssignment()
	case tok.Kind == tokens.IF_TOKEN:
		return p.parseIf()
	case tok.Kind == tokens.WHILE_TOKEN:
		return p.parseWhile()
	case tok.Kind == tokens.FOR_TOKEN:
		return p.parseForEach()
	case tok.Kind == tokens.RETURN_TOKEN:
		return p.parseReturn()
	case tok.Kind == tokens.IDENTIFIER_TOKEN:
		if p.isAhead(tokens.IS_TOKEN) {
			return p.parseDeclaration()
		}
		if p.callAhead() {
			expr, err := p.parsePostfix()
			if err != nil {
				return nil, err
			}
			inv, ok := expr.(*ast.ActionInvocation)
			if !ok {
				return nil, p.errorAtToken(tok, "expected an action invocation")
			}
			return inv, p.endStatement()
		}
		return nil, p.errorAtToken(tok, fmt.Sprintf("unexpected name %q at start of statement", tok.Value))
	default:
		return nil, p.errorAtToken(tok, fmt.Sprintf("unexpected %s at start of statement", describe(tok)))
	}
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF_TOKEN
}

func (p *Parser) peek() tokens.Token {
	if p.cursor >= len(p.tokens) {
		return tokens.Token{Kind: tokens.EOF_TOKEN}
	}
	return p.tokens[p.cursor]
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if p.cursor < len(p.tokens) {
		p.cursor++
	}
	return tok
}

// match reports whether the current token has one of the given kinds.
func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, k := range kinds {
		if p.peek().Kind == k {
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind or fails the parse.
func (p *Parser) expect(kind tokens.TOKEN) (tokens.Token, error) {
	if p.peek().Kind == kind {
		return p.advance(), nil
	}
	tok := p.peek()
	return tokens.Token{}, p.errorAtToken(tok, fmt.Sprintf("expected %q, found %s", string(kind), describe(tok)))
}

// skipLayout moves past newline and comment tokens between statements.
func (p *Parser) skipLayout() {
	for p.peek().Kind.IsLayout() {
		p.advance()
	}
}

// endStatement consumes the statement terminator. Closing keywords,
// "else" and end of file also terminate, so bodies may end without a
// trailing newline.
func (p *Parser) endStatement() error {
	switch {
	case p.match(tokens.NEWLINE_TOKEN, tokens.COMMENT_TOKEN):
		p.advance()
		return nil
	case p.isAtEnd() || isCloser(p.peek().Kind) || p.match(tokens.ELSE_TOKEN):
		return nil
	default:
		tok := p.peek()
		return p.errorAtToken(tok, fmt.Sprintf("unexpected %s after statement", describe(tok)))
	}
}

// next returns the index of the first non-layout token at or after i,
// or -1 at end of input.
func (p *Parser) next(i int) int {
	for ; i < len(p.tokens); i++ {
		if !p.tokens[i].Kind.IsLayout() {
			return i
		}
	}
	return -1
}

// isAhead reports whether the first significant token after the
// current one has the given kind. Only newline and comment tokens are
// skipped; nothing is consumed.
func (p *Parser) isAhead(kind tokens.TOKEN) bool {
	i := p.next(p.cursor + 1)
	return i >= 0 && p.tokens[i].Kind == kind
}

// callAhead reports whether the tokens after the current identifier
// form an invocation head: an optional ".name" hop followed by "(".
func (p *Parser) callAhead() bool {
	i := p.next(p.cursor + 1)
	if i >= 0 && p.tokens[i].Kind == tokens.DOT_TOKEN {
		i = p.next(i + 1)
		if i < 0 || p.tokens[i].Kind != tokens.IDENTIFIER_TOKEN {
			return false
		}
		i = p.next(i + 1)
	}
	return i >= 0 && p.tokens[i].Kind == tokens.OPEN_PAREN_TOKEN
}

func (p *Parser) errorAtToken(tok tokens.Token, msg string) *ParseError {
	return &ParseError{Message: msg, Line: tok.Pos.Line, Column: tok.Pos.Column}
}

func describe(tok tokens.Token) string {
	switch tok.Kind {
	case tokens.EOF_TOKEN:
		return "end of file"
	case tokens.NEWLINE_TOKEN:
		return "end of line"
	case tokens.COMMENT_TOKEN:
		return "a comment"
	case tokens.STRING_TOKEN:
		return fmt.Sprintf("string %q", tok.Value)
	default:
		return fmt.Sprintf("%q", tok.Value)
	}
}

func isCloser(kind tokens.TOKEN) bool {
	switch kind {
	case tokens.END_MODULE_TOKEN, tokens.END_DATA_TOKEN, tokens.END_LAYOUT_TOKEN,
		tokens.END_FORM_TOKEN, tokens.END_SCREEN_TOKEN, tokens.END_FRAGMENT_TOKEN,
		tokens.END_ACTION_TOKEN, tokens.END_TASK_TOKEN, tokens.END_IF_TOKEN,
		tokens.END_WHILE_TOKEN, tokens.END_FOR_TOKEN:
		return true
	}
	return false
}

// isWord reports whether the token is usable as a plain word. Reserved
// words double as words so statements like "db update users" or
// "serve get ..." parse; literals and layout tokens do not.
func isWord(tok tokens.Token) bool {
	if tok.Kind == tokens.IDENTIFIER_TOKEN {
		return true
	}
	switch tok.Kind {
	case tokens.NEWLINE_TOKEN, tokens.COMMENT_TOKEN, tokens.STRING_TOKEN,
		tokens.INT_TOKEN, tokens.DECIMAL_TOKEN, tokens.ANNOTATION_TOKEN, tokens.EOF_TOKEN:
		return false
	}
	if tok.Value == "" || tok.Value[0] < 'a' || tok.Value[0] > 'z' {
		return false
	}
	return string(tok.Kind) == tok.Value
}

// word consumes the next token as a plain word.
func (p *Parser) word(what string) (tokens.Token, error) {
	tok := p.peek()
	if isWord(tok) {
		return p.advance(), nil
	}
	return tokens.Token{}, p.errorAtToken(tok, fmt.Sprintf("expected %s, found %s", what, describe(tok)))
}

// wordOrString consumes a word or a quoted string, whichever is next.
// Endpoints are usually quoted ("/api/users"), entities usually bare.
func (p *Parser) wordOrString(what string) (tokens.Token, error) {
	if p.match(tokens.STRING_TOKEN) {
		return p.advance(), nil
	}
	return p.word(what)
}
