// Package parser turns MIR pattern source into mir trees.
//
// Every production has an exported entry point that must consume the whole
// input. Helpers abort by panicking with an *errors.ParseError; the entry
// points recover it and return it wrapped with tracerr, so a failed parse
// never yields a partial tree.
package parser

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/lexer"
	"github.com/pontaoski/mirpat/mir"
	"github.com/pontaoski/mirpat/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/mirpat", "parser")

type Parser struct {
	l *lexer.Cursor
	// metas holds the metavariables declared so far. When nil any
	// metavariable is accepted.
	metas map[string]bool
	// loops is the number of enclosing `loop` bodies; `break` needs one
	// outside switch arms.
	loops int
	// committed marks a fork that has seen enough to know what it is
	// parsing, so its errors are no longer a reason to backtrack.
	committed bool
}

type options struct {
	filename string
	strict   *bool
}

type Option func(*options)

// WithFilename sets the file name reported in token positions.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithStrictMeta makes the parser reject metavariables that were not declared
// by a preceding `meta!`. It is on by default for ParseMir only.
func WithStrictMeta(strict bool) Option {
	return func(o *options) { o.strict = &strict }
}

func run[T any](src string, opts []Option, strict bool, production func(*Parser) T) (ret T, err error) {
	o := options{filename: "<pattern>"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.strict != nil {
		strict = *o.strict
	}

	l, err := lexer.NewCursor(o.filename, src)
	if err != nil {
		return ret, tracerr.Wrap(err)
	}
	p := &Parser{l: l}
	if strict {
		p.metas = map[string]bool{}
	}

	err = p.guard(func() {
		ret = production(p)
		if !p.l.AtEOF() {
			panic(errors.NewUnexpectedToken(p.l.Peek()))
		}
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return ret, nil
}

func (p *Parser) guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*errors.ParseError)
			if !ok {
				panic(r)
			}
			err = tracerr.Wrap(perr)
		}
	}()
	fn()
	return nil
}

// attempt runs fn against a fork of the cursor. On success the fork is
// adopted; on a parse error it is dropped together with the diagnostic and
// the cursor is left where it was, unless fn called commit first, in which
// case the error is raised as is.
func (p *Parser) attempt(what string, fn func(p *Parser)) (ok bool) {
	fork := &Parser{l: p.l.Fork(), metas: p.metas, loops: p.loops}
	defer func() {
		if r := recover(); r != nil {
			perr, isParse := r.(*errors.ParseError)
			if !isParse {
				panic(r)
			}
			if fork.committed {
				panic(perr)
			}
			if plog.LevelAt(capnslog.TRACE) {
				plog.Tracef("%s: not a %s: %s", p.l.Peek().Location.From, what, perr)
			}
			ok = false
		}
	}()
	fn(fork)
	p.l = fork.l
	return true
}

func (p *Parser) commit() {
	p.committed = true
}

// atPlaceHead reports whether the next tokens can only begin a place: a
// parenthesized or dereferenced place, or a local followed by a projection.
func (p *Parser) atPlaceHead() bool {
	return p.l.PeekIs("(", "*") || p.l.PeekN(1).Is(".") || p.l.PeekN(1).Is("[")
}

func (p *Parser) accept(text string) bool {
	if p.l.Peek().Is(text) {
		p.l.Next()
		return true
	}
	return false
}

func (p *Parser) expect(text string) types.Token {
	tok := p.l.Peek()
	if !tok.Is(text) {
		panic(errors.NewExpectedToken(text, tok))
	}
	return p.l.Next()
}

// expectOpen consumes an opening delimiter, reporting the delimiter class
// (parentheses, ...) when it is missing.
func (p *Parser) expectOpen(text, class string) {
	tok := p.l.Peek()
	if !tok.Is(text) {
		panic(errors.NewExpectedClass(class, tok))
	}
	p.l.Next()
}

func (p *Parser) parseIdent() mir.Identifier {
	tok := p.l.Peek()
	switch {
	case tok.Kind == types.IDENT && lexer.IsKeyword(tok.Text):
		panic(errors.NewKeywordAsIdent(tok))
	case tok.Kind != types.IDENT || tok.Text == "_":
		panic(errors.NewExpectedClass(errors.Identifier, tok))
	}
	p.l.Next()
	return mir.Identifier{Name: tok.Text, Pos: tok.Location}
}

// parseMetaIdent consumes a `$name` and checks it has been declared.
func (p *Parser) parseMetaIdent() mir.Identifier {
	tok := p.l.Peek()
	if tok.Kind != types.METAVAR || tok.Text == mir.CrateMarker {
		panic(errors.NewExpectedClass(errors.MetaVariable, tok))
	}
	if p.metas != nil && !p.metas[tok.Text] {
		panic(errors.NewUndeclaredMeta(tok))
	}
	p.l.Next()
	return mir.Identifier{Name: tok.Text, Pos: tok.Location}
}

func (p *Parser) declareMeta(name string) {
	if p.metas != nil {
		p.metas[name] = true
	}
}

func (p *Parser) parseConstOrMut() bool {
	if p.accept("mut") {
		return true
	}
	p.expect("const")
	return false
}
