// Package errors holds the diagnostics reported while parsing MIR patterns.
//
// The message of every diagnostic is fixed: callers and tests compare Error()
// verbatim, so positions are carried separately in Location.
package errors

import (
	"fmt"

	"github.com/pontaoski/mirpat/types"
)

type Kind int

const (
	// KeywordAsIdent is a reserved word written where an identifier is required.
	KeywordAsIdent Kind = iota
	// ExpectedToken is a missing punctuation or keyword token.
	ExpectedToken
	// ExpectedClass is a missing token class (identifier, parentheses, ...).
	ExpectedClass
	UnexpectedToken
	TypeWithGenericsNotSupported
	UndeclaredMetaVariable
	UnknownMetaKind
	InvalidToken
)

func (k Kind) String() string {
	data := map[Kind]string{
		KeywordAsIdent:               "KeywordAsIdent",
		ExpectedToken:                "ExpectedToken",
		ExpectedClass:                "ExpectedClass",
		UnexpectedToken:              "UnexpectedToken",
		TypeWithGenericsNotSupported: "TypeWithGenericsNotSupported",
		UndeclaredMetaVariable:       "UndeclaredMetaVariable",
		UnknownMetaKind:              "UnknownMetaKind",
		InvalidToken:                 "InvalidToken",
	}
	return data[k]
}

// Token classes used with ExpectedClass.
const (
	Identifier   = "identifier"
	Parentheses  = "parentheses"
	Brackets     = "square brackets"
	Braces       = "curly braces"
	IntLiteral   = "integer literal"
	Literal      = "literal"
	TypeClass    = "type"
	MetaVariable = "meta variable"
)

type ParseError struct {
	Kind Kind
	// Expected is the token text or class the parser wanted.
	Expected string
	// Found is the offending token text, empty at end of input.
	Found    string
	AtEOF    bool
	Location types.Span
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KeywordAsIdent:
		return fmt.Sprintf("expected identifier, found keyword `%s`", e.Found)
	case ExpectedToken:
		return fmt.Sprintf("expected `%s`", e.Expected)
	case ExpectedClass:
		if e.AtEOF {
			return "unexpected end of input, expected " + e.Expected
		}
		return "expected " + e.Expected
	case UnexpectedToken:
		return "unexpected token"
	case TypeWithGenericsNotSupported:
		return "generics not supported on type declaration"
	case UndeclaredMetaVariable:
		return fmt.Sprintf("use of undeclared meta variable `%s`", e.Found)
	case UnknownMetaKind:
		return fmt.Sprintf("unknown meta variable kind `%s`, expected `ty`", e.Found)
	case InvalidToken:
		return "invalid token"
	}
	return "parse error"
}

func NewKeywordAsIdent(tok types.Token) *ParseError {
	return &ParseError{Kind: KeywordAsIdent, Found: tok.Text, Location: tok.Location}
}

func NewExpectedToken(want string, tok types.Token) *ParseError {
	return &ParseError{
		Kind:     ExpectedToken,
		Expected: want,
		Found:    tok.Text,
		AtEOF:    tok.Kind == types.EOF,
		Location: tok.Location,
	}
}

func NewExpectedClass(class string, tok types.Token) *ParseError {
	return &ParseError{
		Kind:     ExpectedClass,
		Expected: class,
		Found:    tok.Text,
		AtEOF:    tok.Kind == types.EOF,
		Location: tok.Location,
	}
}

func NewUnexpectedToken(tok types.Token) *ParseError {
	return &ParseError{
		Kind:     UnexpectedToken,
		Found:    tok.Text,
		AtEOF:    tok.Kind == types.EOF,
		Location: tok.Location,
	}
}

func NewTypeWithGenerics(tok types.Token) *ParseError {
	return &ParseError{Kind: TypeWithGenericsNotSupported, Found: tok.Text, Location: tok.Location}
}

func NewUndeclaredMeta(tok types.Token) *ParseError {
	return &ParseError{Kind: UndeclaredMetaVariable, Found: tok.Text, Location: tok.Location}
}

func NewUnknownMetaKind(tok types.Token) *ParseError {
	return &ParseError{Kind: UnknownMetaKind, Found: tok.Text, Location: tok.Location}
}

func NewInvalidToken(pos types.Position, text string) *ParseError {
	return &ParseError{Kind: InvalidToken, Found: text, Location: types.SingleCharSpan(pos)}
}
