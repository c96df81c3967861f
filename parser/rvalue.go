package parser

import (
	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/mir"
	"github.com/pontaoski/mirpat/types"
)

// parseRvalueOrCall tries the forms with a distinguishing leading token first.
// Anything else starts with a path, and the token after the path decides:
// `(` makes a call, `{` an aggregate, otherwise the path is an operand.
func (p *Parser) parseRvalueOrCall() mir.Rvalue {
	tok := p.l.Peek()
	switch {
	case tok.Is("_"):
		p.l.Next()
		return &mir.RvalueAny{}
	case tok.Is("&"):
		return p.parseRef()
	case tok.Is("["):
		return p.parseArrayOrRepeat()
	case tok.Is("("):
		return p.parseTuple()
	case tok.Is("*"):
		return p.parsePtrFrom()
	case tok.Is("copy"), tok.Is("move"), tok.Is("const"):
		return p.parseCastTail(p.parseOperand())
	case tok.Is("<"), tok.Kind == types.IDENT, tok.Kind == types.METAVAR:
		path := p.parseTypePath()
		switch {
		case p.l.PeekIs("("):
			return p.parseCallArgs(path)
		case p.l.PeekIs("{"):
			return p.parseAggregate(path)
		}
		return p.parseCastTail(&mir.OperandPath{Path: path})
	}
	panic(errors.NewUnexpectedToken(tok))
}

func (p *Parser) parseRef() mir.Rvalue {
	p.expect("&")
	next := p.l.PeekN(1)
	if p.l.PeekIs("raw") && (next.Is("const") || next.Is("mut")) {
		p.l.Next()
		mut := p.parseConstOrMut()
		return &mir.RvalueRawRef{Mut: mut, Place: p.parsePlace()}
	}
	mut := p.accept("mut")
	return &mir.RvalueRef{Mut: mut, Place: p.parsePlace()}
}

// parseArrayOrRepeat parses `[elem; count]` or `[a, b, ...]`.
func (p *Parser) parseArrayOrRepeat() mir.Rvalue {
	p.expectOpen("[", errors.Brackets)
	array := &mir.RvalueArray{}
	if p.accept("]") {
		return array
	}
	first := p.parseOperand()
	if p.accept(";") {
		repeat := &mir.RvalueRepeat{Elem: first, Count: p.parseIntLiteral()}
		p.expect("]")
		return repeat
	}
	array.Elems, array.TrailingComma = p.parseOperandsAfter(first, "]")
	p.expect("]")
	return array
}

func (p *Parser) parseTuple() *mir.RvalueTuple {
	p.expectOpen("(", errors.Parentheses)
	tuple := &mir.RvalueTuple{}
	if p.accept(")") {
		return tuple
	}
	tuple.Elems, tuple.TrailingComma = p.parseOperandsAfter(p.parseOperand(), ")")
	p.expect(")")
	return tuple
}

// parseOperandsAfter continues a comma separated list that began with first,
// stopping before closing.
func (p *Parser) parseOperandsAfter(first mir.Operand, closing string) ([]mir.Operand, bool) {
	ops := []mir.Operand{first}
	for p.accept(",") {
		if p.l.PeekIs(closing) {
			return ops, true
		}
		ops = append(ops, p.parseOperand())
	}
	return ops, false
}

// parsePtrFrom parses `*const Type from (data, meta)`.
func (p *Parser) parsePtrFrom() *mir.RvaluePtrFrom {
	p.expect("*")
	ptr := &mir.RvaluePtrFrom{Mut: p.parseConstOrMut()}
	ptr.Type = p.parseType()
	p.expect("from")
	p.expectOpen("(", errors.Parentheses)
	ptr.Data = p.parseOperand()
	p.expect(",")
	ptr.Meta = p.parseOperand()
	p.expect(")")
	return ptr
}

// parseAggregate parses the `{ field: value, ... }` after path.
func (p *Parser) parseAggregate(path mir.TypePath) *mir.RvalueAggregate {
	agg := &mir.RvalueAggregate{Path: path}
	p.expectOpen("{", errors.Braces)
	for !p.l.PeekIs("}") {
		var field mir.FieldValue
		if tok := p.l.Peek(); tok.Kind == types.INT {
			p.parseUint()
			field.Name = mir.Identifier{Name: tok.Text, Pos: tok.Location}
		} else {
			field.Name = p.parseIdent()
		}
		p.expect(":")
		field.Value = p.parseOperand()
		agg.Fields = append(agg.Fields, field)
		if !p.accept(",") {
			break
		}
		if p.l.PeekIs("}") {
			agg.TrailingComma = true
		}
	}
	p.expect("}")
	return agg
}

func (p *Parser) parseCall() *mir.Call {
	return p.parseCallArgs(p.parseTypePath())
}

// parseCallArgs parses the argument list of a call to fn.
func (p *Parser) parseCallArgs(fn mir.TypePath) *mir.Call {
	call := &mir.Call{Func: fn}
	p.expectOpen("(", errors.Parentheses)
	if !p.l.PeekIs(")") {
		for {
			call.Args = append(call.Args, p.parseOperand())
			if !p.accept(",") {
				break
			}
		}
	}
	p.expect(")")
	return call
}
