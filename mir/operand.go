package mir

type LitKind int

const (
	LitInt LitKind = iota
	LitBool
	LitStr
)

// Literal keeps its token text verbatim, including any type suffix such as
// `0_usize`.
type Literal struct {
	Kind LitKind
	Neg  bool
	Text string
}

func IntLit(text string) Literal {
	return Literal{Kind: LitInt, Text: text}
}

func (l Literal) Print(p *Printer) {
	if l.Neg {
		p.Token("-")
	}
	p.Token(l.Text)
}

type Operand interface {
	Node
	isOperand()
}

// OperandCopy is `copy place`.
type OperandCopy struct {
	Place *Place
}

func (o *OperandCopy) Print(p *Printer) {
	p.Token("copy")
	p.Space()
	o.Place.Print(p)
}

// OperandMove is `move place`.
type OperandMove struct {
	Place *Place
}

func (o *OperandMove) Print(p *Printer) {
	p.Token("move")
	p.Space()
	o.Place.Print(p)
}

// OperandConst is `const lit`.
type OperandConst struct {
	Value Literal
}

func (o *OperandConst) Print(p *Printer) {
	p.Token("const")
	p.Space()
	o.Value.Print(p)
}

// OperandPath refers to an item or a local by path, e.g. `std::mem::take`.
type OperandPath struct {
	Path TypePath
}

func (o *OperandPath) Print(p *Printer) {
	o.Path.Print(p)
}
