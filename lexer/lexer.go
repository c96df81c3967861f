package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/lexer"

	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/types"
)

// Definition splits pattern source into tokens. Whitespace and comments are
// dropped; `<` and `>` always stand alone so `Vec<Vec<T>>` closes twice.
var Definition = lexer.Must(lexer.Regexp(`(\s+)` +
	`|(//[^\n]*)` +
	`|(/\*(?s:.*?)\*/)` +
	`|(?P<Meta>\$[A-Za-z_][A-Za-z0-9_]*)` +
	`|(?P<Ident>[A-Za-z_][A-Za-z0-9_]*)` +
	`|(?P<Int>[0-9][0-9_]*(?:[A-Za-z][A-Za-z0-9_]*)?)` +
	`|(?P<String>"(?:\\.|[^"\\])*")` +
	`|(?P<Punct>::|=>|->|[-+*/%&|^!<>=;:,.()\[\]{}#@?~])`,
))

var kinds = func() map[rune]types.TokenKind {
	symbols := Definition.Symbols()
	return map[rune]types.TokenKind{
		lexer.EOF:         types.EOF,
		symbols["Meta"]:   types.METAVAR,
		symbols["Ident"]:  types.IDENT,
		symbols["Int"]:    types.INT,
		symbols["String"]: types.STRING,
		symbols["Punct"]:  types.PUNCT,
	}
}()

// keywords can never be used where an identifier is expected.
var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,
}

func IsKeyword(s string) bool {
	return keywords[s]
}

// Cursor walks a fully lexed token stream. Forks are independent of their
// parent, which is what speculative parsing relies on.
type Cursor struct {
	peeker *lexer.PeekingLexer
}

func NewCursor(filename, src string) (*Cursor, error) {
	lex, err := Definition.Lex(namedReader{strings.NewReader(src), filename})
	if err != nil {
		return nil, err
	}
	peeker, err := lexer.Upgrade(lex)
	if err != nil {
		return nil, convertError(err, filename)
	}
	return &Cursor{peeker: peeker}, nil
}

// Tokenize lexes src to the end, excluding the EOF token.
func Tokenize(filename, src string) ([]types.Token, error) {
	c, err := NewCursor(filename, src)
	if err != nil {
		return nil, err
	}
	var ret []types.Token
	for !c.AtEOF() {
		ret = append(ret, c.Next())
	}
	return ret, nil
}

func (c *Cursor) Peek() types.Token {
	return c.PeekN(0)
}

// PeekN looks n tokens past the next one.
func (c *Cursor) PeekN(n int) types.Token {
	tok, _ := c.peeker.Peek(n)
	return convert(tok)
}

func (c *Cursor) PeekIs(texts ...string) bool {
	tok := c.Peek()
	for _, text := range texts {
		if tok.Is(text) {
			return true
		}
	}
	return false
}

func (c *Cursor) PeekKind(k types.TokenKind) bool {
	return c.Peek().Kind == k
}

func (c *Cursor) Next() types.Token {
	tok, _ := c.peeker.Next()
	return convert(tok)
}

func (c *Cursor) AtEOF() bool {
	return c.Peek().Kind == types.EOF
}

// Offset is the number of tokens consumed so far.
func (c *Cursor) Offset() int {
	return c.peeker.Cursor()
}

func (c *Cursor) Fork() *Cursor {
	return &Cursor{peeker: c.peeker.Clone()}
}

func convert(tok lexer.Token) types.Token {
	from := types.Position{
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column,
		Filename: tok.Pos.Filename,
	}
	to := from
	if n := utf8.RuneCountInString(tok.Value); n > 1 {
		to.Column += n - 1
	}
	kind, ok := kinds[tok.Type]
	if !ok {
		kind = types.ILLEGAL
	}
	return types.Token{Kind: kind, Text: tok.Value, Location: types.Span{From: from, To: to}}
}

func convertError(err error, filename string) error {
	lerr, ok := err.(*lexer.Error)
	if !ok {
		return err
	}
	pos := lerr.Tok.Pos
	return errors.NewInvalidToken(types.Position{
		Line:     pos.Line,
		Column:   pos.Column,
		Filename: filename,
	}, lerr.Msg)
}

type namedReader struct {
	*strings.Reader
	name string
}

func (r namedReader) Name() string {
	return r.name
}
