package mir

type Type interface {
	Node
	isType()
}

// TypePtr is `*const T` or `*mut T`.
type TypePtr struct {
	Mut  bool
	Elem Type
}

func (t *TypePtr) Print(p *Printer) {
	p.Token("*")
	p.Token(mutability(t.Mut, "const"))
	p.Space()
	t.Elem.Print(p)
}

// TypeRef is `&T` or `&mut T`.
type TypeRef struct {
	Mut  bool
	Elem Type
}

func (t *TypeRef) Print(p *Printer) {
	p.Token("&")
	if t.Mut {
		p.Token("mut")
		p.Space()
	}
	t.Elem.Print(p)
}

type TypeSlice struct {
	Elem Type
}

func (t *TypeSlice) Print(p *Printer) {
	p.Token("[")
	t.Elem.Print(p)
	p.Token("]")
}

// TypeArray is `[T; N]` with a literal length.
type TypeArray struct {
	Elem Type
	Len  Literal
}

func (t *TypeArray) Print(p *Printer) {
	p.Token("[")
	t.Elem.Print(p)
	p.Token(";")
	p.Space()
	t.Len.Print(p)
	p.Token("]")
}

// TypeTuple covers the unit type `()` as well.
type TypeTuple struct {
	Elems         []Type
	TrailingComma bool
}

func (t *TypeTuple) Print(p *Printer) {
	p.Token("(")
	printList(p, len(t.Elems), t.TrailingComma, func(i int) { t.Elems[i].Print(p) })
	p.Token(")")
}

func mutability(mut bool, otherwise string) string {
	if mut {
		return "mut"
	}
	return otherwise
}
