package parser

import (
	"fmt"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/source"
	"github.com/droe-lang/droe-sub001/internal/tokens"
)

// parseStructure is the one shape behind every named block:
//
//	OPEN NAME
//	  item...
//	end OPEN
//
// The item callback parses exactly one body statement; layout handling
// and closer matching live here. The dispatcher has already verified
// the opening keyword.
func (p *Parser) parseStructure(closer tokens.TOKEN, item func() (ast.Statement, error)) (string, []ast.Statement, source.Position, error) {
	head := p.advance()
	if !p.match(tokens.IDENTIFIER_TOKEN) {
		tok := p.peek()
		return "", nil, head.Pos, p.errorAtToken(tok, fmt.Sprintf("expected a name after %q, found %s", head.Value, describe(tok)))
	}
	name := p.advance().Value
	if err := p.endStatement(); err != nil {
		return "", nil, head.Pos, err
	}
	body, err := p.parseBodyUntil(closer, fmt.Sprintf("%s %q", head.Value, name), item)
	if err != nil {
		return "", nil, head.Pos, err
	}
	return name, body, head.Pos, p.endStatement()
}

// parseBodyUntil parses statements until the closer token, which it
// consumes. Hitting end of file or a different closing keyword fails
// the parse: blocks never auto-close.
func (p *Parser) parseBodyUntil(closer tokens.TOKEN, what string, item func() (ast.Statement, error)) ([]ast.Statement, error) {
	var body []ast.Statement
	for {
		p.skipLayout()
		if p.match(closer) {
			p.advance()
			return body, nil
		}
		tok := p.peek()
		if tok.Kind == tokens.EOF_TOKEN {
			return nil, p.errorAtToken(tok, fmt.Sprintf("missing %q for %s", string(closer), what))
		}
		if isCloser(tok.Kind) {
			return nil, p.errorAtToken(tok, fmt.Sprintf("expected %q to close %s, found %q", string(closer), what, tok.Value))
		}
		stmt, err := item()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

func (p *Parser) parseModule() (ast.Statement, error) {
	name, body, pos, err := p.parseStructure(tokens.END_MODULE_TOKEN, p.parseStatement)
	if err != nil {
		return nil, err
	}
	return &ast.ModuleDefinition{Name: name, Body: body, Position: pos}, nil
}

func (p *Parser) parseData() (ast.Statement, error) {
	name, body, pos, err := p.parseStructure(tokens.END_DATA_TOKEN, p.parseDataItem)
	if err != nil {
		return nil, err
	}
	return &ast.DataDefinition{Name: name, Body: body, Position: pos}, nil
}

func (p *Parser) parseLayout() (ast.Statement, error) {
	name, body, pos, err := p.parseStructure(tokens.END_LAYOUT_TOKEN, p.parseUIItem)
	if err != nil {
		return nil, err
	}
	return &ast.LayoutDefinition{Name: name, Body: body, Position: pos}, nil
}

func (p *Parser) parseForm() (ast.Statement, error) {
	name, body, pos, err := p.parseStructure(tokens.END_FORM_TOKEN, p.parseUIItem)
	if err != nil {
		return nil, err
	}
	return &ast.FormDefinition{Name: name, Body: body, Position: pos}, nil
}

func (p *Parser) parseScreen() (ast.Statement, error) {
	name, body, pos, err := p.parseStructure(tokens.END_SCREEN_TOKEN, p.parseUIItem)
	if err != nil {
		return nil, err
	}
	return &ast.ScreenDefinition{Name: name, Body: body, Position: pos}, nil
}

func (p *Parser) parseFragment() (ast.Statement, error) {
	name, body, pos, err := p.parseStructure(tokens.END_FRAGMENT_TOKEN, p.parseUIItem)
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{Name: name, Body: body, Position: pos}, nil
}

// parseDataItem: fields only. Data bodies hold declarations and
// annotations, nothing executable.
func (p *Parser) parseDataItem() (ast.Statement, error) {
	switch {
	case p.match(tokens.ANNOTATION_TOKEN):
		return p.parseAnnotation()
	case p.match(tokens.IDENTIFIER_TOKEN) && p.isAhead(tokens.IS_TOKEN):
		return p.parseDeclaration()
	default:
		tok := p.peek()
		return nil, p.errorAtToken(tok, fmt.Sprintf("expected a field declaration, found %s", describe(tok)))
	}
}

// parseUIItem: leaf components, annotations, and nested form/fragment
// blocks (screens embed both).
func (p *Parser) parseUIItem() (ast.Statement, error) {
	tok := p.peek()
	switch {
	case tok.Kind.IsComponent():
		return p.parseComponent()
	case tok.Kind == tokens.ANNOTATION_TOKEN:
		return p.parseAnnotation()
	case tok.Kind == tokens.FORM_TOKEN:
		return p.parseForm()
	case tok.Kind == tokens.FRAGMENT_TOKEN:
		return p.parseFragment()
	default:
		return nil, p.errorAtToken(tok, fmt.Sprintf("expected a component, found %s", describe(tok)))
	}
}

// parseAction: action NAME [with a, b] [gives TYPE] ... end action
func (p *Parser) parseAction() (ast.Statement, error) {
	head := p.advance()
	if !p.match(tokens.IDENTIFIER_TOKEN) {
		tok := p.peek()
		return nil, p.errorAtToken(tok, fmt.Sprintf("expected a name after \"action\", found %s", describe(tok)))
	}
	name := p.advance()
	act := &ast.ActionDefinition{Name: name.Value, Position: head.Pos}
	if p.match(tokens.WITH_TOKEN) {
		p.advance()
		for {
			param, err := p.expect(tokens.IDENTIFIER_TOKEN)
			if err != nil {
				return nil, err
			}
			act.Params = append(act.Params, ast.Parameter{Name: param.Value, Position: param.Pos})
			if !p.match(tokens.COMMA_TOKEN) {
				break
			}
			p.advance()
		}
	}
	if p.match(tokens.GIVES_TOKEN) {
		p.advance()
		typeName, _, err := p.parseTypePhrase()
		if err != nil {
			return nil, err
		}
		act.ReturnType = typeName
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	body, err := p.parseBodyUntil(tokens.END_ACTION_TOKEN, fmt.Sprintf("action %q", act.Name), p.parseStatement)
	if err != nil {
		return nil, err
	}
	act.Body = body
	return act, p.endStatement()
}

// parseTask: task NAME ... end task
func (p *Parser) parseTask() (ast.Statement, error) {
	head := p.peek()
	name, body, _, err := p.parseStructure(tokens.END_TASK_TOKEN, p.parseStatement)
	if err != nil {
		return nil, err
	}
	return &ast.TaskDefinition{Name: name, Body: body, Position: head.Pos}, nil
}

// parseDeclaration: NAME is TYPE [modifiers...]. The caller has seen
// the "is" with the lookahead scan.
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	name := p.advance()
	p.skipLayout()
	if _, err := p.expect(tokens.IS_TOKEN); err != nil {
		return nil, err
	}
	typeName, elem, err := p.parseTypePhrase()
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDeclaration{
		Name:        name.Value,
		TypeName:    typeName,
		ElementType: elem,
		Position:    name.Pos,
	}
	for p.match(tokens.IDENTIFIER_TOKEN) {
		decl.Modifiers = append(decl.Modifiers, p.advance().Value)
	}
	return decl, p.endStatement()
}

// parseTypePhrase: one type word, or the collection phrases
// "list of X" / "group of X".
func (p *Parser) parseTypePhrase() (string, string, error) {
	switch {
	case p.match(tokens.LIST_TOKEN):
		p.advance()
		if _, err := p.expect(tokens.OF_TOKEN); err != nil {
			return "", "", err
		}
		elem, err := p.typeWord()
		if err != nil {
			return "", "", err
		}
		return "list of " + elem, elem, nil
	case p.match(tokens.GROUP_TOKEN):
		p.advance()
		if _, err := p.expect(tokens.OF_TOKEN); err != nil {
			return "", "", err
		}
		elem, err := p.typeWord()
		if err != nil {
			return "", "", err
		}
		return "group of " + elem, elem, nil
	default:
		word, err := p.typeWord()
		return word, "", err
	}
}

// typeWord consumes one word usable as a type name. "text" lexes as a
// component keyword, so it is accepted here explicitly.
func (p *Parser) typeWord() (string, error) {
	if p.match(tokens.IDENTIFIER_TOKEN, tokens.TEXT_TOKEN) {
		return p.advance().Value, nil
	}
	tok := p.peek()
	return "", p.errorAtToken(tok, fmt.Sprintf("expected a type name, found %s", describe(tok)))
}
