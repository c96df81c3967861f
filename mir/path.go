package mir

import (
	"strings"

	"github.com/pontaoski/mirpat/types"
)

type Identifier struct {
	Name string
	Pos  types.Span
}

func NewID(name string) Identifier {
	return Identifier{Name: name}
}

func (id Identifier) Print(p *Printer) {
	p.Token(id.Name)
}

// IsMeta reports whether the identifier is a sigil-prefixed metavariable name.
func (id Identifier) IsMeta() bool {
	return strings.HasPrefix(id.Name, "$")
}

// CrateMarker is the self-reference token that starts crate-relative paths.
const CrateMarker = "$crate"

// TypePath is a plain or qualified path. Both forms are also types.
type TypePath interface {
	Type
	isTypePath()
}

type GenericArgs struct {
	// Turbofish is set for `::<T>`.
	Turbofish bool
	Args      []Type
}

func (g *GenericArgs) Print(p *Printer) {
	if g.Turbofish {
		p.Token("::")
	}
	p.Token("<")
	printList(p, len(g.Args), false, func(i int) { g.Args[i].Print(p) })
	p.Token(">")
}

type PathSegment struct {
	Ident    Identifier
	Generics *GenericArgs
}

func (s PathSegment) Print(p *Printer) {
	s.Ident.Print(p)
	if s.Generics != nil {
		s.Generics.Print(p)
	}
}

// Path is `a::b<T>::c`, optionally starting with `$crate::`.
type Path struct {
	Crate    bool
	Segments []PathSegment
}

func NewPath(names ...string) *Path {
	path := &Path{}
	for _, name := range names {
		path.Segments = append(path.Segments, PathSegment{Ident: NewID(name)})
	}
	return path
}

func (path *Path) Print(p *Printer) {
	if path.Crate {
		p.Tokens(CrateMarker, "::")
	}
	for i, seg := range path.Segments {
		if i > 0 {
			p.Token("::")
		}
		seg.Print(p)
	}
}

// Ident returns the single segment of a path like `x`, or false.
func (path *Path) Ident() (Identifier, bool) {
	if path.Crate || len(path.Segments) != 1 || path.Segments[0].Generics != nil {
		return Identifier{}, false
	}
	return path.Segments[0].Ident, true
}

// QualifiedPath is `<Self as Trait>::seg`. Self may itself be qualified.
type QualifiedPath struct {
	Self     Type
	Trait    *Path
	Segments []PathSegment
}

func (q *QualifiedPath) Print(p *Printer) {
	p.Token("<")
	q.Self.Print(p)
	if q.Trait != nil {
		p.Space()
		p.Token("as")
		p.Space()
		q.Trait.Print(p)
	}
	p.Token(">")
	for _, seg := range q.Segments {
		p.Token("::")
		seg.Print(p)
	}
}
