package parser

import (
	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/mir"
	"github.com/pontaoski/mirpat/types"
)

func (p *Parser) parsePath() *mir.Path {
	path := &mir.Path{}
	switch tok := p.l.Peek(); {
	case tok.Is(mir.CrateMarker):
		p.l.Next()
		p.expect("::")
		path.Crate = true
		path.Segments = append(path.Segments, p.parsePathSegment())
	case tok.Kind == types.METAVAR:
		path.Segments = append(path.Segments, mir.PathSegment{Ident: p.parseMetaIdent()})
	default:
		path.Segments = append(path.Segments, p.parsePathSegment())
	}

	for p.l.PeekIs("::") {
		p.l.Next()
		path.Segments = append(path.Segments, p.parsePathSegment())
	}
	return path
}

func (p *Parser) parsePathSegment() mir.PathSegment {
	seg := mir.PathSegment{Ident: p.parseIdent()}
	switch {
	case p.l.PeekIs("<"):
		seg.Generics = p.parseGenericArgs(false)
	case p.l.PeekIs("::") && p.l.PeekN(1).Is("<"):
		p.l.Next()
		seg.Generics = p.parseGenericArgs(true)
	}
	return seg
}

func (p *Parser) parseGenericArgs(turbofish bool) *mir.GenericArgs {
	g := &mir.GenericArgs{Turbofish: turbofish}
	p.expect("<")
	if !p.l.PeekIs(">") {
		for {
			g.Args = append(g.Args, p.parseType())
			if !p.accept(",") {
				break
			}
		}
	}
	p.expect(">")
	return g
}

func (p *Parser) parseTypePath() mir.TypePath {
	if p.l.PeekIs("<") {
		return p.parseQualifiedPath()
	}
	return p.parsePath()
}

// parseQualifiedPath parses `<Type [as Trait]>` followed by any number of
// `::segment`. Type recurses, so `< <T>::f>::g` nests.
func (p *Parser) parseQualifiedPath() *mir.QualifiedPath {
	p.expect("<")
	q := &mir.QualifiedPath{Self: p.parseType()}
	if p.accept("as") {
		q.Trait = p.parsePath()
	}
	p.expect(">")
	for p.l.PeekIs("::") {
		p.l.Next()
		q.Segments = append(q.Segments, p.parsePathSegment())
	}
	return q
}

func (p *Parser) parseType() mir.Type {
	tok := p.l.Peek()
	switch {
	case tok.Is("*"):
		p.l.Next()
		mut := p.parseConstOrMut()
		return &mir.TypePtr{Mut: mut, Elem: p.parseType()}
	case tok.Is("&"):
		p.l.Next()
		mut := p.accept("mut")
		return &mir.TypeRef{Mut: mut, Elem: p.parseType()}
	case tok.Is("["):
		p.l.Next()
		elem := p.parseType()
		if p.accept(";") {
			length := p.parseIntLiteral()
			p.expect("]")
			return &mir.TypeArray{Elem: elem, Len: length}
		}
		p.expect("]")
		return &mir.TypeSlice{Elem: elem}
	case tok.Is("("):
		p.l.Next()
		tuple := &mir.TypeTuple{}
		for !p.l.PeekIs(")") {
			tuple.Elems = append(tuple.Elems, p.parseType())
			if !p.accept(",") {
				break
			}
			if p.l.PeekIs(")") {
				tuple.TrailingComma = true
			}
		}
		p.expect(")")
		return tuple
	case tok.Is("<"), tok.Kind == types.IDENT, tok.Kind == types.METAVAR:
		return p.parseTypePath()
	}
	panic(errors.NewExpectedClass(errors.TypeClass, tok))
}

// parseTypeDecl parses `type Name = Type;`. The declared name may not take
// generic parameters.
func (p *Parser) parseTypeDecl() *mir.TypeDecl {
	p.expect("type")
	decl := &mir.TypeDecl{Name: p.parseIdent()}
	if tok := p.l.Peek(); tok.Is("<") {
		panic(errors.NewTypeWithGenerics(tok))
	}
	p.expect("=")
	decl.Type = p.parseType()
	p.expect(";")
	return decl
}
