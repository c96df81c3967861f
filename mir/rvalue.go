package mir

// Rvalue is the right-hand side of an assignment or let. *Call is an Rvalue
// too, so an Rvalue slot holds what the grammar calls rvalue-or-call.
type Rvalue interface {
	Node
	isRvalue()
}

// RvalueAny is `_`: any value.
type RvalueAny struct{}

func (*RvalueAny) Print(p *Printer) {
	p.Token("_")
}

type RvalueUse struct {
	Operand Operand
}

func (r *RvalueUse) Print(p *Printer) {
	r.Operand.Print(p)
}

// CastKind names the cast semantics, e.g. PtrToPtr. It is not checked here.
type CastKind struct {
	Identifier
}

// RvalueCast is `operand as Type (Kind)`.
type RvalueCast struct {
	Operand Operand
	Type    Type
	Kind    CastKind
}

func (r *RvalueCast) Print(p *Printer) {
	r.Operand.Print(p)
	p.Space()
	p.Token("as")
	p.Space()
	r.Type.Print(p)
	p.Space()
	p.Token("(")
	r.Kind.Print(p)
	p.Token(")")
}

// RvalueRef is `&place` or `&mut place`.
type RvalueRef struct {
	Mut   bool
	Place *Place
}

func (r *RvalueRef) Print(p *Printer) {
	p.Token("&")
	if r.Mut {
		p.Token("mut")
		p.Space()
	}
	r.Place.Print(p)
}

// RvalueRawRef is `&raw const place` or `&raw mut place`.
type RvalueRawRef struct {
	Mut   bool
	Place *Place
}

func (r *RvalueRawRef) Print(p *Printer) {
	p.Tokens("&", "raw")
	p.Space()
	p.Token(mutability(r.Mut, "const"))
	p.Space()
	r.Place.Print(p)
}

// RvalueRepeat is `[elem; count]`.
type RvalueRepeat struct {
	Elem  Operand
	Count Literal
}

func (r *RvalueRepeat) Print(p *Printer) {
	p.Token("[")
	r.Elem.Print(p)
	p.Token(";")
	p.Space()
	r.Count.Print(p)
	p.Token("]")
}

type RvalueArray struct {
	Elems         []Operand
	TrailingComma bool
}

func (r *RvalueArray) Print(p *Printer) {
	p.Token("[")
	printList(p, len(r.Elems), r.TrailingComma, func(i int) { r.Elems[i].Print(p) })
	p.Token("]")
}

type RvalueTuple struct {
	Elems         []Operand
	TrailingComma bool
}

func (r *RvalueTuple) Print(p *Printer) {
	p.Token("(")
	printList(p, len(r.Elems), r.TrailingComma, func(i int) { r.Elems[i].Print(p) })
	p.Token(")")
}

// FieldValue is one `name: operand` of an aggregate.
type FieldValue struct {
	Name  Identifier
	Value Operand
}

// RvalueAggregate is a struct or variant literal `Path { field: value }`.
type RvalueAggregate struct {
	Path          TypePath
	Fields        []FieldValue
	TrailingComma bool
}

func (r *RvalueAggregate) Print(p *Printer) {
	r.Path.Print(p)
	p.Space()
	p.Token("{")
	if len(r.Fields) > 0 {
		p.Space()
	}
	printList(p, len(r.Fields), r.TrailingComma, func(i int) {
		r.Fields[i].Name.Print(p)
		p.Token(":")
		p.Space()
		r.Fields[i].Value.Print(p)
	})
	if len(r.Fields) > 0 {
		p.Space()
	}
	p.Token("}")
}

// RvaluePtrFrom builds a raw pointer from data and metadata:
// `*const [T] from (data, meta)`.
type RvaluePtrFrom struct {
	Mut  bool
	Type Type
	Data Operand
	Meta Operand
}

func (r *RvaluePtrFrom) Print(p *Printer) {
	p.Token("*")
	p.Token(mutability(r.Mut, "const"))
	p.Space()
	r.Type.Print(p)
	p.Space()
	p.Token("from")
	p.Space()
	p.Token("(")
	r.Data.Print(p)
	p.Token(",")
	p.Space()
	r.Meta.Print(p)
	p.Token(")")
}

// Call is `func(args...)`. It appears as a statement and as an Rvalue.
type Call struct {
	Func TypePath
	Args []Operand
}

func (c *Call) Print(p *Printer) {
	c.Func.Print(p)
	p.Token("(")
	printList(p, len(c.Args), false, func(i int) { c.Args[i].Print(p) })
	p.Token(")")
}
