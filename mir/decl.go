package mir

// Delim is the bracket style of a `meta!` invocation.
type Delim int

const (
	Parens Delim = iota
	Brackets
	Braces
)

// Tokens returns the opening and closing bracket.
func (d Delim) Tokens() (string, string) {
	switch d {
	case Brackets:
		return "[", "]"
	case Braces:
		return "{", "}"
	}
	return "(", ")"
}

// MetaVar is `$T:ty`.
type MetaVar struct {
	Name Identifier
	Kind Identifier
}

// Meta is `meta!($T:ty, ...);`. The braced form takes no `;`.
type Meta struct {
	Delim         Delim
	Vars          []MetaVar
	TrailingComma bool
}

func (m *Meta) Print(p *Printer) {
	opening, closing := m.Delim.Tokens()
	p.Tokens("meta", "!")
	if m.Delim == Braces {
		p.Space()
	}
	p.Token(opening)
	printList(p, len(m.Vars), m.TrailingComma, func(i int) {
		m.Vars[i].Name.Print(p)
		p.Token(":")
		m.Vars[i].Kind.Print(p)
	})
	p.Token(closing)
	if m.Delim != Braces {
		p.Token(";")
	}
}

type Declaration interface {
	Node
	isDeclaration()
}

// UseDecl is `use path;`.
type UseDecl struct {
	Path *Path
}

func (u *UseDecl) Print(p *Printer) {
	p.Token("use")
	p.Space()
	u.Path.Print(p)
	p.Token(";")
}

// TypeDecl is `type Name = Type;`.
type TypeDecl struct {
	Name Identifier
	Type Type
}

func (t *TypeDecl) Print(p *Printer) {
	p.Token("type")
	p.Space()
	t.Name.Print(p)
	p.Space()
	p.Token("=")
	p.Space()
	t.Type.Print(p)
	p.Token(";")
}

// LetDecl is `let name: Type [= init];`. Without Init the local is only
// constrained by its uses.
type LetDecl struct {
	Name Identifier
	Type Type
	Init Rvalue
}

func (l *LetDecl) Print(p *Printer) {
	p.Token("let")
	p.Space()
	l.Name.Print(p)
	p.Token(":")
	p.Space()
	l.Type.Print(p)
	if l.Init != nil {
		p.Space()
		p.Token("=")
		p.Space()
		l.Init.Print(p)
	}
	p.Token(";")
}

// Mir is a whole pattern: declarations in fixed order, then the body.
type Mir struct {
	Metas []*Meta
	Uses  []*UseDecl
	Types []*TypeDecl
	Lets  []*LetDecl
	Body  []Statement
}

func (m *Mir) Print(p *Printer) {
	section := func(n int, each func(i int)) {
		if n == 0 {
			return
		}
		p.BlankLine()
		for i := 0; i < n; i++ {
			p.Newline()
			each(i)
		}
	}
	section(len(m.Metas), func(i int) { m.Metas[i].Print(p) })
	section(len(m.Uses), func(i int) { m.Uses[i].Print(p) })
	section(len(m.Types), func(i int) { m.Types[i].Print(p) })
	section(len(m.Lets), func(i int) { m.Lets[i].Print(p) })
	if len(m.Body) > 0 {
		p.BlankLine()
		printStmts(p, m.Body)
	}
}

// MetaVars returns every declared metavariable name in order.
func (m *Mir) MetaVars() []string {
	var ret []string
	for _, meta := range m.Metas {
		for _, v := range meta.Vars {
			ret = append(ret, v.Name.Name)
		}
	}
	return ret
}
