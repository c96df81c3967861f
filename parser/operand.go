package parser

import (
	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/mir"
	"github.com/pontaoski/mirpat/types"
)

// parseOperand picks the form by its leading keyword; without one the operand
// is a path.
func (p *Parser) parseOperand() mir.Operand {
	switch {
	case p.accept("copy"):
		return &mir.OperandCopy{Place: p.parsePlace()}
	case p.accept("move"):
		return &mir.OperandMove{Place: p.parsePlace()}
	case p.accept("const"):
		return &mir.OperandConst{Value: p.parseLiteral()}
	}
	return &mir.OperandPath{Path: p.parseTypePath()}
}

func (p *Parser) parseLiteral() mir.Literal {
	if p.accept("-") {
		lit := p.parseIntLiteral()
		lit.Neg = true
		return lit
	}
	tok := p.l.Peek()
	switch {
	case tok.Kind == types.INT:
		return p.parseIntLiteral()
	case tok.Kind == types.STRING:
		p.l.Next()
		return mir.Literal{Kind: mir.LitStr, Text: tok.Text}
	case tok.Kind == types.IDENT && (tok.Text == "true" || tok.Text == "false"):
		p.l.Next()
		return mir.Literal{Kind: mir.LitBool, Text: tok.Text}
	}
	panic(errors.NewExpectedClass(errors.Literal, tok))
}

// parseIntLiteral parses an integer that keeps its text, suffix included.
func (p *Parser) parseIntLiteral() mir.Literal {
	tok := p.l.Peek()
	if tok.Kind != types.INT {
		panic(errors.NewExpectedClass(errors.IntLiteral, tok))
	}
	p.l.Next()
	return mir.IntLit(tok.Text)
}

func (p *Parser) parseCastKind() mir.CastKind {
	return mir.CastKind{Identifier: p.parseIdent()}
}

// parseCastTail parses ` as Type (Kind)` after op, or returns op as a use.
func (p *Parser) parseCastTail(op mir.Operand) mir.Rvalue {
	if !p.l.PeekIs("as") {
		return &mir.RvalueUse{Operand: op}
	}
	return p.parseCast(op)
}

func (p *Parser) parseRvalueCast() *mir.RvalueCast {
	return p.parseCast(p.parseOperand())
}

// parseCast parses `as Type (Kind)`. Once `as` is seen the parenthesized kind
// is mandatory.
func (p *Parser) parseCast(op mir.Operand) *mir.RvalueCast {
	p.expect("as")
	cast := &mir.RvalueCast{Operand: op, Type: p.parseType()}
	p.expectOpen("(", errors.Parentheses)
	cast.Kind = p.parseCastKind()
	p.expect(")")
	return cast
}
