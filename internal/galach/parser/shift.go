package parser

import (
	"github.com/TomasPilar/query-translator/internal/galach/ast"
	"github.com/TomasPilar/query-translator/internal/galach/correction"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

// shift consumes one token from the input queue and dispatches it to the
// routine for its type. Most routines just push the token; a few produce a
// node immediately and hand it to the reduce loop.
func (p *Parser) shift(tok token.Token) {
	switch {
	case tok.Type == token.Whitespace:
		p.shiftWhitespace(tok)
	case tok.Is(token.TermKind):
		p.reduceLoop(&ast.Term{Token: tok})
	case tok.Type == token.GroupBegin:
		p.push(tokEntry(tok))
	case tok.Type == token.GroupEnd:
		p.push(tokEntry(tok))
		p.reduceLoop(&ast.Group{})
	case tok.Type == token.LogicalAnd, tok.Type == token.LogicalOr:
		p.shiftBinary(tok)
	case tok.Type == token.LogicalNot:
		p.push(tokEntry(tok))
	case tok.Type == token.LogicalNot2:
		p.shiftPrefixOperator(tok, true)
	case tok.Type == token.Include, tok.Type == token.Exclude:
		p.shiftPrefixOperator(tok, false)
	case tok.Type == token.Bailout:
		p.corr.Add(correction.BailoutTokenIgnored, tok)
	}
}

// shiftWhitespace discards inter-token spacing. A dangling prefix operator
// immediately below it on the stack had nothing to apply to, since the
// tokenizer only ever emits +, -, and ! when immediately followed by a
// non-whitespace byte.
func (p *Parser) shiftWhitespace(tok token.Token) {
	top, ok := p.peekToken()
	if ok && top.Is(token.Include|token.Exclude|token.LogicalNot2) {
		p.popToken()
		p.corr.Add(correction.UnaryOpMissingOperandIgnored, top)
	}
}

func (p *Parser) shiftBinary(tok token.Token) {
	entry, ok := p.topEntry()
	switch {
	case !ok:
		p.corr.Add(correction.BinaryOpMissingLeftOperandIgnored, tok)
	case !entry.isTok:
		p.push(tokEntry(tok))
	case entry.tok.Type == token.GroupBegin:
		p.corr.Add(correction.BinaryOpMissingLeftOperandIgnored, tok)
	case entry.tok.Is(token.Operator):
		p.corr.Add(correction.BinaryOpFollowingOpIgnored, tok)
	default:
		p.push(tokEntry(tok))
	}
}

// shiftPrefixOperator handles !, +, and -. allowBangException relaxes the
// "next token is an operator" rejection for a second consecutive '!'.
func (p *Parser) shiftPrefixOperator(tok token.Token, allowBangException bool) {
	if p.pos < len(p.queue) {
		next := p.queue[p.pos]
		blocked := next.Is(token.Operator)
		if allowBangException && next.Type == token.LogicalNot2 {
			blocked = false
		}
		if blocked {
			p.corr.Add(correction.UnaryOpPrecedingOpIgnored, tok)
			return
		}
	}
	p.push(tokEntry(tok))
}
