package parser

import (
	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/mir"
	"github.com/pontaoski/mirpat/types"
)

var metaDelims = map[string]mir.Delim{
	"(": mir.Parens,
	"[": mir.Brackets,
	"{": mir.Braces,
}

// parseMeta parses `meta!($T:ty, ...);` in any bracket style and declares
// each metavariable for the rest of the input.
func (p *Parser) parseMeta() *mir.Meta {
	p.expect("meta")
	p.expect("!")
	tok := p.l.Peek()
	delim, ok := metaDelims[tok.Text]
	if !ok || tok.Kind != types.PUNCT {
		panic(errors.NewExpectedClass(errors.Parentheses, tok))
	}
	p.l.Next()
	_, closing := delim.Tokens()

	meta := &mir.Meta{Delim: delim}
	for !p.l.PeekIs(closing) {
		name := p.l.Peek()
		if name.Kind != types.METAVAR || name.Text == mir.CrateMarker {
			panic(errors.NewExpectedClass(errors.MetaVariable, name))
		}
		p.l.Next()
		p.expect(":")
		kindTok := p.l.Peek()
		kind := p.parseIdent()
		if kind.Name != "ty" {
			panic(errors.NewUnknownMetaKind(kindTok))
		}
		p.declareMeta(name.Text)
		meta.Vars = append(meta.Vars, mir.MetaVar{
			Name: mir.Identifier{Name: name.Text, Pos: name.Location},
			Kind: kind,
		})
		if !p.accept(",") {
			break
		}
		if p.l.PeekIs(closing) {
			meta.TrailingComma = true
		}
	}
	p.expect(closing)
	if delim != mir.Braces {
		p.expect(";")
	}
	return meta
}

func (p *Parser) parseUse() *mir.UseDecl {
	p.expect("use")
	decl := &mir.UseDecl{Path: p.parsePath()}
	p.expect(";")
	return decl
}

func (p *Parser) parseLet() *mir.LetDecl {
	p.expect("let")
	decl := &mir.LetDecl{Name: p.parseIdent()}
	p.expect(":")
	decl.Type = p.parseType()
	if p.accept("=") {
		decl.Init = p.parseRvalueOrCall()
	}
	p.expect(";")
	return decl
}

func (p *Parser) atMeta() bool {
	return p.l.PeekIs("meta") && p.l.PeekN(1).Is("!")
}

func (p *Parser) atDeclaration() bool {
	return p.atMeta() || p.l.PeekIs("use", "type", "let")
}

func (p *Parser) parseDeclaration() mir.Declaration {
	switch {
	case p.l.PeekIs("use"):
		return p.parseUse()
	case p.l.PeekIs("type"):
		return p.parseTypeDecl()
	case p.l.PeekIs("let"):
		return p.parseLet()
	}
	panic(errors.NewUnexpectedToken(p.l.Peek()))
}

// parseMir parses a whole pattern. Declarations come in the order metas,
// uses, type aliases, lets; a declaration out of that order, or one among
// the body statements, is an unexpected token.
func (p *Parser) parseMir() *mir.Mir {
	m := &mir.Mir{}
	for p.atMeta() {
		m.Metas = append(m.Metas, p.parseMeta())
	}
	for p.l.PeekIs("use") {
		m.Uses = append(m.Uses, p.parseUse())
	}
	for p.l.PeekIs("type") {
		m.Types = append(m.Types, p.parseTypeDecl())
	}
	for p.l.PeekIs("let") {
		m.Lets = append(m.Lets, p.parseLet())
	}
	for !p.l.AtEOF() {
		if p.atDeclaration() {
			panic(errors.NewUnexpectedToken(p.l.Peek()))
		}
		m.Body = append(m.Body, p.parseTerminatedStatement())
	}
	plog.Debugf("parsed pattern: %d metas, %d uses, %d types, %d lets, %d statements",
		len(m.Metas), len(m.Uses), len(m.Types), len(m.Lets), len(m.Body))
	return m
}
