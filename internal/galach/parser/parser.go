// Package parser implements the Galach shift/reduce parser with error
// recovery: it never rejects input, instead discarding malformed tokens and
// recording each repair in a correction.Log.
package parser

import (
	"fmt"

	"github.com/TomasPilar/query-translator/internal/galach/ast"
	"github.com/TomasPilar/query-translator/internal/galach/correction"
	"github.com/TomasPilar/query-translator/internal/galach/lexer"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

// SyntaxTree is the parser's public result: the root Query node, the
// original token sequence it was built from, and the ordered log of
// recovery actions taken along the way.
type SyntaxTree struct {
	Root        *ast.Query
	Tokens      token.Sequence
	Corrections []correction.Correction
}

// Parser drives the shift/reduce loop over a single stack of tokens and
// nodes. A Parser owns its stack, input queue, and correction log
// exclusively for the duration of one Parse call; Parse builds a fresh
// Parser for every call, so concurrent Parse calls share no state.
type Parser struct {
	stack []stackEntry
	queue []token.Token
	pos   int
	corr  correction.Log
}

// ParseString tokenizes input and parses the resulting sequence in one
// step.
func ParseString(input string) SyntaxTree {
	return Parse(lexer.Tokenize(input))
}

// Parse consumes a token sequence and builds a SyntaxTree. It never fails
// for any input; the only fatal condition is an internal consistency
// violation in the parser itself (see finalize), which indicates a bug in
// this package, not in the input.
func Parse(seq token.Sequence) SyntaxTree {
	p := &Parser{}
	p.queue = balanceGroups(seq.Tokens, &p.corr)

	for p.pos < len(p.queue) {
		tok := p.queue[p.pos]
		p.pos++
		p.shift(tok)
	}

	root := p.finalize()
	return SyntaxTree{Root: root, Tokens: seq, Corrections: p.corr.Entries()}
}

// peekInputSkipWhitespace looks at the next significant (non-Whitespace)
// token still in the input queue without consuming anything.
func (p *Parser) peekInputSkipWhitespace() (token.Token, bool) {
	for i := p.pos; i < len(p.queue); i++ {
		if p.queue[i].Type == token.Whitespace {
			continue
		}
		return p.queue[i], true
	}
	return token.Token{}, false
}

// consumeBinaryAhead consumes a run of whitespace followed by a binary
// operator from the input queue, if present, and returns the operator. If
// the next significant token is not AND/OR, nothing is consumed.
func (p *Parser) consumeBinaryAhead() (token.Token, bool) {
	i := p.pos
	for i < len(p.queue) && p.queue[i].Type == token.Whitespace {
		i++
	}
	if i >= len(p.queue) || !p.queue[i].Is(token.OperatorBinary) {
		return token.Token{}, false
	}
	op := p.queue[i]
	p.pos = i + 1
	return op, true
}

// finalize runs reduceQuery: it strips any operator tokens still sitting on
// the stack once input is drained, resolves any OR chain left pending by
// the AND-lookahead deferral, and wraps everything left into the Query
// root.
func (p *Parser) finalize() *ast.Query {
	for {
		t, ok := p.peekToken()
		if !ok {
			break
		}
		p.popToken()
		if t.Is(token.OperatorUnary) {
			p.corr.Add(correction.UnaryOpMissingOperandIgnored, t)
		} else {
			p.corr.Add(correction.BinaryOpMissingRightOperandIgnored, t)
		}
	}

	for {
		top, ok := p.topEntry()
		if !ok || top.isTok {
			break
		}
		below, ok := p.belowTop()
		if !ok || !below.isTok || below.tok.Type != token.LogicalOr {
			break
		}
		right := p.popNode()
		op := p.popToken()
		left := p.popNode()
		p.push(nodeEntry(&ast.LogicalOr{Left: left, Right: right, Token: op}))
	}

	children := make([]ast.Node, 0, len(p.stack))
	for _, e := range p.stack {
		if e.isTok {
			panic(fmt.Sprintf("galach parser: internal consistency violated: stray token %s survived finalization", e.tok))
		}
		children = append(children, e.node)
	}

	query := &ast.Query{Nodes: children}
	p.stack = []stackEntry{nodeEntry(query)}

	if len(p.stack) != 1 || p.stack[0].isTok || p.stack[0].node.Kind() != ast.KindQuery {
		panic("galach parser: internal consistency violated: finalization did not yield a single Query node")
	}
	return query
}
