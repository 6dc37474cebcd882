package parser

import (
	"github.com/TomasPilar/query-translator/internal/galach/ast"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

// stackEntry is the sum type held by the parse stack: either an unreduced
// token awaiting an operand, or a completed AST node.
type stackEntry struct {
	tok   token.Token
	node  ast.Node
	isTok bool
}

func tokEntry(t token.Token) stackEntry { return stackEntry{tok: t, isTok: true} }
func nodeEntry(n ast.Node) stackEntry   { return stackEntry{node: n} }

func (p *Parser) push(e stackEntry) {
	p.stack = append(p.stack, e)
}

func (p *Parser) pop() stackEntry {
	n := len(p.stack) - 1
	e := p.stack[n]
	p.stack = p.stack[:n]
	return e
}

func (p *Parser) topEntry() (stackEntry, bool) {
	if len(p.stack) == 0 {
		return stackEntry{}, false
	}
	return p.stack[len(p.stack)-1], true
}

// belowTop returns the entry directly beneath the stack top, if any.
func (p *Parser) belowTop() (stackEntry, bool) {
	if len(p.stack) < 2 {
		return stackEntry{}, false
	}
	return p.stack[len(p.stack)-2], true
}

// peekToken returns the token at the top of the stack, or ok=false if the
// stack is empty or its top holds a node instead of a token.
func (p *Parser) peekToken() (token.Token, bool) {
	e, ok := p.topEntry()
	if !ok || !e.isTok {
		return token.Token{}, false
	}
	return e.tok, true
}

// popToken pops the stack top, which the caller must already know is a
// token (typically via a prior peekToken call).
func (p *Parser) popToken() token.Token {
	return p.pop().tok
}

// popNode pops the stack top, which the caller must already know is a node.
func (p *Parser) popNode() ast.Node {
	return p.pop().node
}
