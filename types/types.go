package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	IDENT
	METAVAR
	INT
	STRING
	PUNCT
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:     "EOF",
		ILLEGAL: "ILLEGAL",
		IDENT:   "IDENT",
		METAVAR: "METAVAR",
		INT:     "INT",
		STRING:  "STRING",
		PUNCT:   "PUNCT",
	}
	return data[t]
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// Join returns the span covering both s and o, assuming s starts first.
func (s Span) Join(o Span) Span {
	return Span{s.From, o.To}
}

type Token struct {
	Kind     TokenKind
	Text     string
	Location Span
}

// Is reports whether the token is the punctuation or word text.
func (t Token) Is(text string) bool {
	return t.Kind != EOF && t.Kind != STRING && t.Text == text
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return t.Text
}
