package parser

import (
	"github.com/pontaoski/mirpat/mir"
)

// Productions other than ParseMir accept any metavariable unless
// WithStrictMeta(true) is given.

func ParsePath(src string, opts ...Option) (*mir.Path, error) {
	return run(src, opts, false, (*Parser).parsePath)
}

func ParsePathSegment(src string, opts ...Option) (mir.PathSegment, error) {
	return run(src, opts, false, (*Parser).parsePathSegment)
}

// ParseTypePath parses a plain path or a `<Type as Trait>::seg` path.
func ParseTypePath(src string, opts ...Option) (mir.TypePath, error) {
	return run(src, opts, false, (*Parser).parseTypePath)
}

func ParseType(src string, opts ...Option) (mir.Type, error) {
	return run(src, opts, false, (*Parser).parseType)
}

func ParseTypeDecl(src string, opts ...Option) (*mir.TypeDecl, error) {
	return run(src, opts, false, (*Parser).parseTypeDecl)
}

func ParsePlace(src string, opts ...Option) (*mir.Place, error) {
	return run(src, opts, false, (*Parser).parsePlace)
}

func ParseOperand(src string, opts ...Option) (mir.Operand, error) {
	return run(src, opts, false, (*Parser).parseOperand)
}

func ParseCastKind(src string, opts ...Option) (mir.CastKind, error) {
	return run(src, opts, false, (*Parser).parseCastKind)
}

// ParseRvalueCast parses `op as Type (Kind)`.
func ParseRvalueCast(src string, opts ...Option) (*mir.RvalueCast, error) {
	return run(src, opts, false, (*Parser).parseRvalueCast)
}

// ParseRvalueOrCall parses anything that may stand on the right of `=`.
func ParseRvalueOrCall(src string, opts ...Option) (mir.Rvalue, error) {
	return run(src, opts, false, (*Parser).parseRvalueOrCall)
}

func ParseCall(src string, opts ...Option) (*mir.Call, error) {
	return run(src, opts, false, (*Parser).parseCall)
}

// ParseAssign parses `place = rvalue` without a trailing `;`.
func ParseAssign(src string, opts ...Option) (*mir.StmtAssign, error) {
	return run(src, opts, false, (*Parser).parseAssign)
}

// ParseStatement parses one statement including its `;`, if it takes one.
func ParseStatement(src string, opts ...Option) (*mir.TerminatedStatement, error) {
	return run(src, opts, false, func(p *Parser) *mir.TerminatedStatement {
		return &mir.TerminatedStatement{Stmt: p.parseTerminatedStatement()}
	})
}

func ParseBlock(src string, opts ...Option) (*mir.Block, error) {
	return run(src, opts, false, (*Parser).parseBlock)
}

func ParseSwitchInt(src string, opts ...Option) (*mir.SwitchInt, error) {
	return run(src, opts, false, (*Parser).parseSwitchInt)
}

func ParseLoop(src string, opts ...Option) (*mir.Loop, error) {
	return run(src, opts, false, (*Parser).parseLoop)
}

func ParseMeta(src string, opts ...Option) (*mir.Meta, error) {
	return run(src, opts, false, (*Parser).parseMeta)
}

// ParseDeclaration parses a single `use`, `type` or `let` declaration.
func ParseDeclaration(src string, opts ...Option) (mir.Declaration, error) {
	return run(src, opts, false, (*Parser).parseDeclaration)
}

// ParseMir parses a whole pattern. Metavariables must be declared before use
// unless WithStrictMeta(false) is given.
func ParseMir(src string, opts ...Option) (*mir.Mir, error) {
	return run(src, opts, true, (*Parser).parseMir)
}
