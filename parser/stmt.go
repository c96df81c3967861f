package parser

import (
	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/mir"
)

// parseStatement parses one statement without its terminating `;`.
//
// Keyword led forms are decided by their first token. A statement starting
// with `drop(` is a drop when a place follows and a call otherwise; any other
// statement is an assignment when a place followed by `=` can be read, and a
// call when it cannot. Once the lead is accepted errors are not retried, and
// a lead that can only start a place commits to the drop or assignment.
func (p *Parser) parseStatement() mir.Statement {
	tok := p.l.Peek()
	switch {
	case tok.Is("switchInt") && p.l.PeekN(1).Is("("):
		return p.parseSwitchInt()
	case tok.Is("loop"):
		return p.parseLoop()
	case tok.Is("{"):
		return p.parseBlock()
	case tok.Is("break"):
		if p.loops == 0 {
			panic(errors.NewUnexpectedToken(tok))
		}
		p.l.Next()
		return &mir.Break{}
	case tok.Is("_") && p.l.PeekN(1).Is("="):
		p.l.Next()
		p.l.Next()
		return &mir.StmtDiscard{Call: p.parseCall()}
	}

	if tok.Is("drop") && p.l.PeekN(1).Is("(") {
		var drop *mir.StmtDrop
		if p.attempt("drop", func(fork *Parser) { drop = fork.parseDrop() }) {
			return drop
		}
	}

	var place *mir.Place
	if p.attempt("assignment", func(fork *Parser) {
		if fork.atPlaceHead() || fork.l.PeekN(1).Is("=") {
			fork.commit()
		}
		place = fork.parsePlace()
		fork.expect("=")
	}) {
		return &mir.StmtAssign{Place: place, Value: p.parseRvalueOrCall()}
	}
	return &mir.StmtCall{Call: p.parseCall()}
}

// parseDrop parses `drop(place)`. It fails unless the closing parenthesis
// directly follows the place, leaving `drop(move x)` to be read as a call.
func (p *Parser) parseDrop() *mir.StmtDrop {
	p.expect("drop")
	p.expectOpen("(", errors.Parentheses)
	if p.atPlaceHead() {
		p.commit()
	}
	drop := &mir.StmtDrop{Place: p.parsePlace()}
	p.expect(")")
	if p.l.PeekIs("=") {
		panic(errors.NewUnexpectedToken(p.l.Peek()))
	}
	return drop
}

// parseTerminatedStatement parses a statement as it appears in a block.
func (p *Parser) parseTerminatedStatement() mir.Statement {
	stmt := p.parseStatement()
	if mir.NeedsSemicolon(stmt) {
		p.expect(";")
	}
	return stmt
}

func (p *Parser) parseAssign() *mir.StmtAssign {
	place := p.parsePlace()
	p.expect("=")
	return &mir.StmtAssign{Place: place, Value: p.parseRvalueOrCall()}
}

func (p *Parser) parseBlock() *mir.Block {
	p.expectOpen("{", errors.Braces)
	block := &mir.Block{}
	for !p.l.PeekIs("}") {
		if p.l.AtEOF() {
			panic(errors.NewExpectedToken("}", p.l.Peek()))
		}
		block.Stmts = append(block.Stmts, p.parseTerminatedStatement())
	}
	p.expect("}")
	return block
}

// parseSwitchInt parses `switchInt(op) { key => body, ... }`. An arm whose
// body is not braced needs a comma unless it is the last one.
func (p *Parser) parseSwitchInt() *mir.SwitchInt {
	p.expect("switchInt")
	p.expectOpen("(", errors.Parentheses)
	s := &mir.SwitchInt{Discr: p.parseOperand()}
	p.expect(")")
	p.expectOpen("{", errors.Braces)
	wildcard := false
	for !p.l.PeekIs("}") {
		arm := &mir.SwitchArm{}
		if tok := p.l.Peek(); tok.Is("_") {
			if wildcard {
				panic(errors.NewUnexpectedToken(tok))
			}
			p.l.Next()
			arm.Wildcard, wildcard = true, true
		} else {
			arm.Key = p.parseLiteral()
		}
		p.expect("=>")
		if p.l.PeekIs("break") {
			p.l.Next()
			arm.Body = &mir.Break{}
		} else {
			arm.Body = p.parseStatement()
		}
		arm.Comma = p.accept(",")
		s.Arms = append(s.Arms, arm)
		if !arm.Comma && mir.NeedsSemicolon(arm.Body) && !p.l.PeekIs("}") {
			panic(errors.NewExpectedToken(",", p.l.Peek()))
		}
	}
	p.expect("}")
	return s
}

func (p *Parser) parseLoop() *mir.Loop {
	p.expect("loop")
	p.loops++
	defer func() { p.loops-- }()
	return &mir.Loop{Body: p.parseBlock()}
}
