package parser

import (
	"strconv"

	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/mir"
	"github.com/pontaoski/mirpat/types"
)

// parsePlace parses a local and its projections. A bare `*` applies to the
// whole place after it, so nothing can follow it.
func (p *Parser) parsePlace() *mir.Place {
	var place *mir.Place
	switch {
	case p.accept("*"):
		return p.parsePlace().Project(&mir.ProjDeref{Bare: true})
	case p.accept("("):
		if p.accept("*") {
			place = p.parsePlace().Project(&mir.ProjDeref{})
		} else {
			place = p.parsePlace()
			if p.accept("as") {
				place = place.Project(&mir.ProjDowncast{Variant: p.parseIdent()})
			} else {
				place = place.Project(&mir.ProjParens{})
			}
		}
		p.expect(")")
	default:
		place = &mir.Place{Local: p.parseLocal()}
	}

	for {
		proj := p.parseProjection()
		if proj == nil {
			return place
		}
		place.Projections = append(place.Projections, proj)
	}
}

func (p *Parser) parseLocal() mir.Identifier {
	if tok := p.l.Peek(); tok.Kind == types.IDENT && tok.Text == "self" {
		p.l.Next()
		return mir.Identifier{Name: tok.Text, Pos: tok.Location}
	}
	return p.parseIdent()
}

// parseProjection returns nil when the next token starts no projection.
func (p *Parser) parseProjection() mir.Projection {
	switch {
	case p.accept("."):
		if tok := p.l.Peek(); tok.Kind == types.INT {
			p.parseUint()
			return &mir.ProjField{Field: mir.Identifier{Name: tok.Text, Pos: tok.Location}}
		}
		return &mir.ProjField{Field: p.parseIdent()}
	case p.accept("["):
		var proj mir.Projection
		if p.l.PeekKind(types.IDENT) {
			proj = &mir.ProjIndex{Local: p.parseLocal()}
		} else {
			from := p.parseOffset()
			if p.accept("of") {
				proj = &mir.ProjConstantIndex{Offset: from, MinLength: p.parseUint()}
			} else {
				p.expect(":")
				proj = &mir.ProjSubslice{From: from, To: p.parseOffset()}
			}
		}
		p.expect("]")
		return proj
	}
	return nil
}

func (p *Parser) parseOffset() mir.Offset {
	fromEnd := p.accept("-")
	return mir.Offset{Value: p.parseUint(), FromEnd: fromEnd}
}

// parseUint parses a plain decimal integer, without separators, suffix or
// leading zeros.
func (p *Parser) parseUint() uint64 {
	tok := p.l.Peek()
	if tok.Kind != types.INT || (len(tok.Text) > 1 && tok.Text[0] == '0') {
		panic(errors.NewExpectedClass(errors.IntLiteral, tok))
	}
	n, err := strconv.ParseUint(tok.Text, 10, 64)
	if err != nil {
		panic(errors.NewExpectedClass(errors.IntLiteral, tok))
	}
	p.l.Next()
	return n
}
