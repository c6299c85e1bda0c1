package parser

import (
	"fmt"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
	"github.com/droe-lang/droe-sub001/internal/tokens"
)

// parseExpression climbs the usual ladder: or < and < comparison <
// additive < multiplicative < primary. Comparisons and logical
// operators build BinaryOp nodes, + - * / build ArithmeticOp nodes.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(tokens.OR_TOKEN) {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: op.Value, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.match(tokens.AND_TOKEN) {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: op.Value, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.match(tokens.EQUALS_TOKEN, tokens.NOT_EQUALS_TOKEN, tokens.GREATER_TOKEN,
		tokens.LESS_TOKEN, tokens.GREATER_EQ_TOKEN, tokens.LESS_EQ_TOKEN) {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: op.Value, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.match(tokens.PLUS_TOKEN, tokens.MINUS_TOKEN) {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.ArithmeticOp{Left: left, Operator: op.Value, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.match(tokens.STAR_TOKEN, tokens.SLASH_TOKEN) {
		op := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.ArithmeticOp{Left: left, Operator: op.Value, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch {
	case tok.Kind.IsLiteral():
		p.advance()
		return literalFromToken(tok), nil
	case tok.Kind == tokens.NOT_TOKEN:
		p.advance()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Operator: tok.Value, Right: operand, Position: tok.Pos}, nil
	case tok.Kind == tokens.MINUS_TOKEN:
		// a leading minus folds into the number literal
		p.advance()
		num := p.peek()
		if num.Kind != tokens.INT_TOKEN && num.Kind != tokens.DECIMAL_TOKEN {
			return nil, p.errorAtToken(num, fmt.Sprintf("expected a number after \"-\", found %s", describe(num)))
		}
		p.advance()
		lit := literalFromToken(num)
		lit.Value = "-" + lit.Value
		lit.Position = tok.Pos
		return lit, nil
	case tok.Kind == tokens.OPEN_PAREN_TOKEN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokens.CLOSE_PAREN_TOKEN); err != nil {
			return nil, err
		}
		return inner, nil
	case tok.Kind == tokens.IDENTIFIER_TOKEN:
		return p.parsePostfix()
	default:
		return nil, p.errorAtToken(tok, fmt.Sprintf("expected an expression, found %s", describe(tok)))
	}
}

// parsePostfix handles names: a bare identifier, a dotted property
// chain, or an invocation head NAME( / MODULE.NAME(.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	name := p.advance()
	if p.match(tokens.OPEN_PAREN_TOKEN) {
		return p.parseInvocationArgs("", name)
	}
	var expr ast.Expression = &ast.Identifier{Name: name.Value, Position: name.Pos}
	first := true
	for p.match(tokens.DOT_TOKEN) {
		p.advance()
		prop, err := p.expect(tokens.IDENTIFIER_TOKEN)
		if err != nil {
			return nil, err
		}
		if first && p.match(tokens.OPEN_PAREN_TOKEN) {
			return p.parseInvocationArgs(name.Value, prop)
		}
		first = false
		expr = &ast.PropertyAccess{Object: expr, Property: prop.Value, Position: name.Pos}
	}
	return expr, nil
}

func (p *Parser) parseInvocationArgs(module string, name tokens.Token) (ast.Expression, error) {
	p.advance() // consume "("
	pos := name.Pos
	inv := &ast.ActionInvocation{Module: module, Name: name.Value, Position: pos}
	p.skipLayout()
	if p.match(tokens.CLOSE_PAREN_TOKEN) {
		p.advance()
		return inv, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		inv.Args = append(inv.Args, arg)
		p.skipLayout()
		if !p.match(tokens.COMMA_TOKEN) {
			break
		}
		p.advance()
		p.skipLayout()
	}
	if _, err := p.expect(tokens.CLOSE_PAREN_TOKEN); err != nil {
		return nil, err
	}
	return inv, nil
}

func literalFromToken(tok tokens.Token) *ast.Literal {
	kind := ast.StringLiteral
	switch tok.Kind {
	case tokens.INT_TOKEN:
		kind = ast.IntLiteral
	case tokens.DECIMAL_TOKEN:
		kind = ast.DecimalLiteral
	case tokens.TRUE_TOKEN, tokens.FALSE_TOKEN, tokens.YES_TOKEN, tokens.NO_TOKEN:
		kind = ast.BooleanLiteral
	}
	return &ast.Literal{Kind: kind, Value: tok.Value, Position: tok.Pos}
}
