package mir

import (
	"strconv"
)

// Place is a local followed by projections, innermost first: `(*x.0)[1:-3]`
// is x with Field 0, Deref, Subslice 1..-3.
type Place struct {
	Local       Identifier
	Projections []Projection
}

func NewPlace(local string, projs ...Projection) *Place {
	return &Place{Local: NewID(local), Projections: projs}
}

type Projection interface {
	isProjection()
	// open writes the tokens the projection puts before the local.
	open(p *Printer)
	// close writes the tokens it puts after everything projected so far.
	close(p *Printer)
}

func (pl *Place) Print(p *Printer) {
	for i := len(pl.Projections) - 1; i >= 0; i-- {
		pl.Projections[i].open(p)
	}
	pl.Local.Print(p)
	for _, proj := range pl.Projections {
		proj.close(p)
	}
}

// Project returns a copy of the place with proj appended.
func (pl *Place) Project(proj Projection) *Place {
	projs := make([]Projection, 0, len(pl.Projections)+1)
	projs = append(projs, pl.Projections...)
	return &Place{Local: pl.Local, Projections: append(projs, proj)}
}

// Semantic returns the projections without the purely syntactic ProjParens.
func (pl *Place) Semantic() []Projection {
	var ret []Projection
	for _, proj := range pl.Projections {
		if _, ok := proj.(*ProjParens); !ok {
			ret = append(ret, proj)
		}
	}
	return ret
}

// ProjField is `.0` or `.name`.
type ProjField struct {
	Field Identifier
}

func (f *ProjField) open(p *Printer) {}
func (f *ProjField) close(p *Printer) {
	p.Token(".")
	f.Field.Print(p)
}

// Index returns the tuple index of the field, or false for named fields.
func (f *ProjField) Index() (int, bool) {
	n, err := strconv.Atoi(f.Field.Name)
	return n, err == nil
}

// ProjDeref is `(*p)`, or `*p` when Bare. A bare deref is always outermost.
type ProjDeref struct {
	Bare bool
}

func (d *ProjDeref) open(p *Printer) {
	if !d.Bare {
		p.Token("(")
	}
	p.Token("*")
}

func (d *ProjDeref) close(p *Printer) {
	if !d.Bare {
		p.Token(")")
	}
}

// ProjDowncast is `(p as Variant)`.
type ProjDowncast struct {
	Variant Identifier
}

func (d *ProjDowncast) open(p *Printer) {
	p.Token("(")
}

func (d *ProjDowncast) close(p *Printer) {
	p.Space()
	p.Token("as")
	p.Space()
	d.Variant.Print(p)
	p.Token(")")
}

// ProjIndex is `[local]`.
type ProjIndex struct {
	Local Identifier
}

func (x *ProjIndex) open(p *Printer) {}
func (x *ProjIndex) close(p *Printer) {
	p.Token("[")
	x.Local.Print(p)
	p.Token("]")
}

// Offset is a signed position; FromEnd counts from the end of the sequence.
type Offset struct {
	Value   uint64
	FromEnd bool
}

func (o Offset) Print(p *Printer) {
	if o.FromEnd {
		p.Token("-")
	}
	p.Token(strconv.FormatUint(o.Value, 10))
}

// ProjConstantIndex is `[offset of min_length]`.
type ProjConstantIndex struct {
	Offset    Offset
	MinLength uint64
}

func (c *ProjConstantIndex) open(p *Printer) {}
func (c *ProjConstantIndex) close(p *Printer) {
	p.Token("[")
	c.Offset.Print(p)
	p.Space()
	p.Token("of")
	p.Space()
	p.Token(strconv.FormatUint(c.MinLength, 10))
	p.Token("]")
}

// ProjSubslice is `[from:to]`; both bounds are written.
type ProjSubslice struct {
	From Offset
	To   Offset
}

func (s *ProjSubslice) open(p *Printer) {}
func (s *ProjSubslice) close(p *Printer) {
	p.Token("[")
	s.From.Print(p)
	p.Token(":")
	s.To.Print(p)
	p.Token("]")
}

// ProjParens records redundant parentheses around a place. It has no meaning.
type ProjParens struct{}

func (*ProjParens) open(p *Printer)  { p.Token("(") }
func (*ProjParens) close(p *Printer) { p.Token(")") }
