package parser

import (
	"fmt"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/tokens"
)

// parseInclude: include lib.utils  |  include "lib/utils.droe"
func (p *Parser) parseInclude() (ast.Statement, error) {
	head := p.advance()
	var module string
	switch {
	case p.match(tokens.STRING_TOKEN):
		module = p.advance().Value
	case p.match(tokens.IDENTIFIER_TOKEN):
		module = p.advance().Value
		for p.match(tokens.DOT_TOKEN) {
			p.advance()
			part, err := p.expect(tokens.IDENTIFIER_TOKEN)
			if err != nil {
				return nil, err
			}
			module += "." + part.Value
		}
	default:
		tok := p.peek()
		return nil, p.errorAtToken(tok, fmt.Sprintf("expected a module name after \"include\", found %s", describe(tok)))
	}
	return &ast.IncludeStatement{Module: module, Position: head.Pos}, p.endStatement()
}

// parseAnnotation: @key [value]. The annotation lands both in the
// enclosing statement list (via the caller) and in Program.Metadata.
func (p *Parser) parseAnnotation() (ast.Statement, error) {
	tok := p.advance()
	meta := &ast.MetadataAnnotation{Key: tok.Value, Position: tok.Pos}
	if p.peek().Kind.IsLiteral() || p.match(tokens.IDENTIFIER_TOKEN) {
		meta.Value = p.advance().Value
	}
	p.program.Metadata = append(p.program.Metadata, meta)
	return meta, p.endStatement()
}

// parseDisplay: display EXPR
func (p *Parser) parseDisplay() (ast.Statement, error) {
	head := p.advance()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.DisplayStatement{Value: value, Position: head.Pos}, p.endStatement()
}

// parseAssignment: set TARGET to EXPR
func (p *Parser) parseAssignment() (ast.Statement, error) {
	head := p.advance()
	target, err := p.parseTarget()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.TO_TOKEN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Target: target, Value: value, Position: head.Pos}, p.endStatement()
}

// parseTarget: an identifier or a dotted property path.
func (p *Parser) parseTarget() (ast.Expression, error) {
	tok := p.peek()
	if tok.Kind != tokens.IDENTIFIER_TOKEN {
		return nil, p.errorAtToken(tok, fmt.Sprintf("expected a variable after \"set\", found %s", describe(tok)))
	}
	name := p.advance()
	var target ast.Expression = &ast.Identifier{Name: name.Value, Position: name.Pos}
	for p.match(tokens.DOT_TOKEN) {
		p.advance()
		prop, err := p.expect(tokens.IDENTIFIER_TOKEN)
		if err != nil {
			return nil, err
		}
		target = &ast.PropertyAccess{Object: target, Property: prop.Value, Position: name.Pos}
	}
	return target, nil
}

// parseIf: if EXPR ... [else ...] end if
func (p *Parser) parseIf() (ast.Statement, error) {
	head := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	node := &ast.IfStatement{Condition: cond, Position: head.Pos}
	for {
		p.skipLayout()
		if p.match(tokens.END_IF_TOKEN) {
			p.advance()
			return node, p.endStatement()
		}
		if p.match(tokens.ELSE_TOKEN) {
			p.advance()
			break
		}
		tok := p.peek()
		if tok.Kind == tokens.EOF_TOKEN {
			return nil, p.errorAtToken(tok, `missing "end if"`)
		}
		if isCloser(tok.Kind) {
			return nil, p.errorAtToken(tok, fmt.Sprintf(`expected "end if", found %q`, tok.Value))
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		node.Then = append(node.Then, stmt)
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	elseBody, err := p.parseBodyUntil(tokens.END_IF_TOKEN, "else branch", p.parseStatement)
	if err != nil {
		return nil, err
	}
	node.Else = elseBody
	return node, p.endStatement()
}

// parseWhile: while EXPR ... end while
func (p *Parser) parseWhile() (ast.Statement, error) {
	head := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	body, err := p.parseBodyUntil(tokens.END_WHILE_TOKEN, "while loop", p.parseStatement)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Condition: cond, Body: body, Position: head.Pos}, p.endStatement()
}

// parseForEach: for each NAME in EXPR ... end for
func (p *Parser) parseForEach() (ast.Statement, error) {
	head := p.advance()
	if _, err := p.expect(tokens.EACH_TOKEN); err != nil {
		return nil, err
	}
	name, err := p.expect(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.IN_TOKEN); err != nil {
		return nil, err
	}
	coll, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	body, err := p.parseBodyUntil(tokens.END_FOR_TOKEN, "for-each loop", p.parseStatement)
	if err != nil {
		return nil, err
	}
	return &ast.ForEachStatement{Variable: name.Value, Collection: coll, Body: body, Position: head.Pos}, p.endStatement()
}

// parseReturn: return [EXPR]
func (p *Parser) parseReturn() (ast.Statement, error) {
	head := p.advance()
	node := &ast.ReturnStatement{Position: head.Pos}
	if !p.match(tokens.NEWLINE_TOKEN, tokens.COMMENT_TOKEN, tokens.EOF_TOKEN, tokens.ELSE_TOKEN) && !isCloser(p.peek().Kind) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Value = value
	}
	return node, p.endStatement()
}

// parseDatabase: db OPERATION ENTITY
func (p *Parser) parseDatabase() (ast.Statement, error) {
	head := p.advance()
	op, err := p.word(`an operation after "db"`)
	if err != nil {
		return nil, err
	}
	entity, err := p.wordOrString("an entity name")
	if err != nil {
		return nil, err
	}
	return &ast.DatabaseStatement{Operation: op.Value, EntityName: entity.Value, Position: head.Pos}, p.endStatement()
}

// parseApiCall: call|fetch|update|delete METHOD ENDPOINT
func (p *Parser) parseApiCall() (ast.Statement, error) {
	head := p.advance()
	method, err := p.word(fmt.Sprintf("a method after %q", head.Value))
	if err != nil {
		return nil, err
	}
	endpoint, err := p.wordOrString("an endpoint")
	if err != nil {
		return nil, err
	}
	return &ast.ApiCallStatement{
		Keyword:  head.Value,
		Method:   method.Value,
		Endpoint: endpoint.Value,
		Position: head.Pos,
	}, p.endStatement()
}

// parseServe: serve METHOD ENDPOINT
func (p *Parser) parseServe() (ast.Statement, error) {
	head := p.advance()
	method, err := p.word(`a method after "serve"`)
	if err != nil {
		return nil, err
	}
	endpoint, err := p.wordOrString("an endpoint")
	if err != nil {
		return nil, err
	}
	return &ast.ServeStatement{Method: method.Value, Endpoint: endpoint.Value, Position: head.Pos}, p.endStatement()
}

// parseComponent: KEYWORD [literal args...]. Attributes, classes and
// styles stay empty here; a later styling pass owns them.
func (p *Parser) parseComponent() (ast.Statement, error) {
	head := p.advance()
	var args []*ast.Literal
	for p.peek().Kind.IsLiteral() {
		args = append(args, literalFromToken(p.advance()))
	}
	return componentNode(head, args), p.endStatement()
}

func componentNode(head tokens.Token, args []*ast.Literal) ast.Statement {
	switch head.Kind {
	case tokens.TITLE_TOKEN:
		return &ast.TitleComponent{Args: args, Position: head.Pos}
	case tokens.TEXT_TOKEN:
		return &ast.TextComponent{Args: args, Position: head.Pos}
	case tokens.INPUT_TOKEN:
		return &ast.InputComponent{Args: args, Position: head.Pos}
	case tokens.TEXTAREA_TOKEN:
		return &ast.TextareaComponent{Args: args, Position: head.Pos}
	case tokens.DROPDOWN_TOKEN:
		return &ast.DropdownComponent{Args: args, Position: head.Pos}
	case tokens.TOGGLE_TOKEN:
		return &ast.ToggleComponent{Args: args, Position: head.Pos}
	case tokens.CHECKBOX_TOKEN:
		return &ast.CheckboxComponent{Args: args, Position: head.Pos}
	case tokens.RADIO_TOKEN:
		return &ast.RadioComponent{Args: args, Position: head.Pos}
	case tokens.BUTTON_TOKEN:
		return &ast.ButtonComponent{Args: args, Position: head.Pos}
	case tokens.IMAGE_TOKEN:
		return &ast.ImageComponent{Args: args, Position: head.Pos}
	case tokens.VIDEO_TOKEN:
		return &ast.VideoComponent{Args: args, Position: head.Pos}
	case tokens.AUDIO_TOKEN:
		return &ast.AudioComponent{Args: args, Position: head.Pos}
	default:
		return &ast.SlotComponent{Args: args, Position: head.Pos}
	}
}
