package mir

import (
	"strings"
)

// Node is anything that can write itself back as pattern tokens.
type Node interface {
	Print(p *Printer)
}

// Printer writes tokens with canonical spacing. Whatever layout it picks, the
// token sequence is exactly the one the node was parsed from.
type Printer struct {
	buf     strings.Builder
	indent  int
	last    string
	space   bool
	newline int
}

// Token writes one token, separating it from the previous one when asked to
// or when the two would otherwise lex as a single token.
func (p *Printer) Token(s string) {
	switch {
	case p.newline > 0 && p.buf.Len() > 0:
		for i := 0; i < p.newline; i++ {
			p.buf.WriteByte('\n')
		}
		p.buf.WriteString(strings.Repeat("    ", p.indent))
	case p.space || glued(p.last, s):
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(s)
	p.last = s
	p.space = false
	p.newline = 0
}

func (p *Printer) Tokens(ss ...string) {
	for _, s := range ss {
		p.Token(s)
	}
}

func (p *Printer) Space() {
	p.space = true
}

func (p *Printer) Newline() {
	if p.newline == 0 {
		p.newline = 1
	}
}

// BlankLine requests an empty line before the next token.
func (p *Printer) BlankLine() {
	p.newline = 2
}

func (p *Printer) Indent() {
	p.indent++
}

func (p *Printer) Dedent() {
	p.indent--
}

func (p *Printer) String() string {
	return p.buf.String()
}

// Format renders a node on its own.
func Format(n Node) string {
	var p Printer
	n.Print(&p)
	return p.String()
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || c == '"' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

var gluedPunct = map[string]bool{
	"::": true, "=>": true, "->": true, "//": true, "/*": true, "*/": true,
}

func glued(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	if isWordByte(prev[len(prev)-1]) && isWordByte(next[0]) {
		return true
	}
	return gluedPunct[prev[len(prev)-1:]+next[:1]]
}

func printList(p *Printer, n int, trailing bool, each func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			p.Token(",")
			p.Space()
		}
		each(i)
	}
	if trailing {
		p.Token(",")
	}
}
