package mir

type Statement interface {
	Node
	isStatement()
}

// StmtAssign is `place = rvalue`.
type StmtAssign struct {
	Place *Place
	Value Rvalue
}

func (s *StmtAssign) Print(p *Printer) {
	s.Place.Print(p)
	p.Space()
	p.Token("=")
	p.Space()
	s.Value.Print(p)
}

type StmtCall struct {
	Call *Call
}

func (s *StmtCall) Print(p *Printer) {
	s.Call.Print(p)
}

// StmtDrop is `drop(place)`.
type StmtDrop struct {
	Place *Place
}

func (s *StmtDrop) Print(p *Printer) {
	p.Tokens("drop", "(")
	s.Place.Print(p)
	p.Token(")")
}

// StmtDiscard is `_ = call(...)`.
type StmtDiscard struct {
	Call *Call
}

func (s *StmtDiscard) Print(p *Printer) {
	p.Token("_")
	p.Space()
	p.Token("=")
	p.Space()
	s.Call.Print(p)
}

type Break struct{}

func (*Break) Print(p *Printer) {
	p.Token("break")
}

type Block struct {
	Stmts []Statement
}

func (b *Block) Print(p *Printer) {
	p.Token("{")
	if len(b.Stmts) == 0 {
		p.Token("}")
		return
	}
	p.Indent()
	printStmts(p, b.Stmts)
	p.Dedent()
	p.Newline()
	p.Token("}")
}

// TerminatedStatement is a statement as written in a block, with its `;`
// when it takes one. Switch arm bodies are never terminated.
type TerminatedStatement struct {
	Stmt Statement
}

func (t *TerminatedStatement) Print(p *Printer) {
	t.Stmt.Print(p)
	if NeedsSemicolon(t.Stmt) {
		p.Token(";")
	}
}

func printStmts(p *Printer, stmts []Statement) {
	for _, stmt := range stmts {
		p.Newline()
		(&TerminatedStatement{Stmt: stmt}).Print(p)
	}
}

// NeedsSemicolon reports whether stmt is terminated by `;` inside a block.
// Braced statements are not.
func NeedsSemicolon(stmt Statement) bool {
	switch stmt.(type) {
	case *Block, *SwitchInt, *Loop:
		return false
	}
	return true
}

// SwitchArm is `key => body`. Body statements carry no `;`.
type SwitchArm struct {
	Wildcard bool
	Key      Literal
	Body     Statement
	Comma    bool
}

func (a *SwitchArm) Print(p *Printer) {
	if a.Wildcard {
		p.Token("_")
	} else {
		a.Key.Print(p)
	}
	p.Space()
	p.Token("=>")
	p.Space()
	a.Body.Print(p)
	if a.Comma {
		p.Token(",")
	}
}

// SwitchInt is `switchInt(operand) { arms }`.
type SwitchInt struct {
	Discr Operand
	Arms  []*SwitchArm
}

func (s *SwitchInt) Print(p *Printer) {
	p.Tokens("switchInt", "(")
	s.Discr.Print(p)
	p.Token(")")
	p.Space()
	p.Token("{")
	if len(s.Arms) == 0 {
		p.Token("}")
		return
	}
	p.Indent()
	for _, arm := range s.Arms {
		p.Newline()
		arm.Print(p)
	}
	p.Dedent()
	p.Newline()
	p.Token("}")
}

// Otherwise returns the wildcard arm, if any.
func (s *SwitchInt) Otherwise() *SwitchArm {
	for _, arm := range s.Arms {
		if arm.Wildcard {
			return arm
		}
	}
	return nil
}

type Loop struct {
	Body *Block
}

func (l *Loop) Print(p *Printer) {
	p.Token("loop")
	p.Space()
	l.Body.Print(p)
}
