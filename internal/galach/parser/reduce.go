package parser

import (
	"github.com/TomasPilar/query-translator/internal/galach/ast"
	"github.com/TomasPilar/query-translator/internal/galach/correction"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

// reducer attempts to combine the stack top with node. It reports applied
// when it changed parser state (the returned node replaces the current one
// and the reduce loop restarts from that node's reduction group); halt
// additionally means the reducer already pushed something onto the stack
// itself and the reduce loop must stop without pushing anything more.
type reducer func(p *Parser, node ast.Node) (result ast.Node, applied bool, halt bool)

// reductionGroup returns, for a just-produced node's kind, the ordered list
// of reductions the parser attempts before giving up and pushing the node.
func reductionGroup(kind ast.Kind) []reducer {
	switch kind {
	case ast.KindGroup:
		return []reducer{reduceGroup, reduceInclusivity, reduceLogicalNot, reduceLogicalAnd, reduceLogicalOr}
	case ast.KindTerm:
		return []reducer{reduceInclusivity, reduceLogicalNot, reduceLogicalAnd, reduceLogicalOr}
	case ast.KindInclude, ast.KindExclude, ast.KindLogicalNot:
		return []reducer{reduceLogicalNot, reduceLogicalAnd, reduceLogicalOr}
	case ast.KindLogicalAnd:
		return []reducer{reduceLogicalOr}
	default: // KindLogicalOr, KindQuery: no further reductions apply
		return nil
	}
}

// reduceLoop repeatedly tries the reductions declared for node's kind. A
// firing reduction replaces node and restarts the search from the first
// reducer of the new node's (possibly different) kind. When nothing fires,
// the node is pushed as-is. A reducer that returns halt has already pushed
// something onto the stack, so the loop stops without pushing again.
func (p *Parser) reduceLoop(node ast.Node) {
	for node != nil {
		fired := false
		for _, r := range reductionGroup(node.Kind()) {
			result, applied, halt := r(p, node)
			if !applied {
				continue
			}
			fired = true
			if halt {
				return
			}
			node = result
			break
		}
		if !fired {
			break
		}
	}
	if node != nil {
		p.push(nodeEntry(node))
	}
}

// reduceInclusivity wraps node in Include/Exclude if the stack top is a "+"
// or "-" token.
func reduceInclusivity(p *Parser, node ast.Node) (ast.Node, bool, bool) {
	top, ok := p.peekToken()
	if !ok || !top.Is(token.Include|token.Exclude) {
		return nil, false, false
	}
	op := p.popToken()
	if op.Type == token.Include {
		return &ast.Include{Operand: node, Token: op}, true, false
	}
	return &ast.Exclude{Operand: node, Token: op}, true, false
}

// reduceLogicalNot wraps node in LogicalNot if the stack top is "NOT" or
// "!". Negating an Include/Exclude is illegal: the stacked negations are
// dropped instead, with one correction listing all of them.
func reduceLogicalNot(p *Parser, node ast.Node) (ast.Node, bool, bool) {
	top, ok := p.peekToken()
	if !ok || !top.Is(token.OperatorNot) {
		return nil, false, false
	}

	if node.Kind() == ast.KindInclude || node.Kind() == ast.KindExclude {
		var popped []token.Token
		for {
			t, ok := p.peekToken()
			if !ok || !t.Is(token.OperatorNot) {
				break
			}
			popped = append(popped, p.popToken())
		}
		p.corr.Add(correction.LogicalNotPrecedingInclusivityIgnored, popped...)
		return node, true, false
	}

	op := p.popToken()
	return &ast.LogicalNot{Operand: node, Token: op}, true, false
}

// reduceLogicalAnd combines node with a pending left operand if the stack
// top is "AND".
func reduceLogicalAnd(p *Parser, node ast.Node) (ast.Node, bool, bool) {
	if len(p.stack) < 2 {
		return nil, false, false
	}
	top, ok := p.peekToken()
	if !ok || top.Type != token.LogicalAnd {
		return nil, false, false
	}
	op := p.popToken()
	left := p.popNode()
	return &ast.LogicalAnd{Left: left, Right: node, Token: op}, true, false
}

// reduceLogicalOr combines node with a pending left operand if the stack
// top is "OR". At query level (not forced from within a closing group) it
// first checks whether AND follows in the input; if so it defers, giving
// AND higher precedence, by pushing node back and halting the reduce loop.
func reduceLogicalOr(p *Parser, node ast.Node) (ast.Node, bool, bool) {
	return reduceLogicalOrWithContext(p, node, false)
}

func reduceLogicalOrWithContext(p *Parser, node ast.Node, inGroup bool) (ast.Node, bool, bool) {
	if len(p.stack) < 2 {
		return nil, false, false
	}
	top, ok := p.peekToken()
	if !ok || top.Type != token.LogicalOr {
		return nil, false, false
	}

	if !inGroup {
		if next, ok := p.peekInputSkipWhitespace(); ok && next.Type == token.LogicalAnd {
			p.push(nodeEntry(node))
			return nil, true, true
		}
	}

	op := p.popToken()
	left := p.popNode()
	return &ast.LogicalOr{Left: left, Right: node, Token: op}, true, false
}

// reduceGroup fires only when the stack top is ")" — i.e. immediately after
// GroupEnd's shift pushed it and produced the placeholder node. It pops the
// delimiter, strips any stray operators hugging it, collapses an empty
// group, and otherwise assembles the completed Group from the nodes
// between the delimiters.
func reduceGroup(p *Parser, node ast.Node) (ast.Node, bool, bool) {
	closeTok, ok := p.peekToken()
	if !ok || closeTok.Type != token.GroupEnd {
		return nil, false, false
	}
	p.popToken()

	for {
		t, ok := p.peekToken()
		if !ok || !t.Is(token.Operator) {
			break
		}
		p.popToken()
		if t.Is(token.OperatorUnary) {
			p.corr.Add(correction.UnaryOpMissingOperandIgnored, t)
		} else {
			p.corr.Add(correction.BinaryOpMissingRightOperandIgnored, t)
		}
	}

	if top, ok := p.peekToken(); ok && top.Type == token.GroupBegin {
		return reduceEmptyGroup(p, top, closeTok), true, false
	}

	// Force any OR left dangling directly beneath the top of the stack to
	// resolve now: the group boundary ends any deferred AND-before-OR wait.
	if top, ok := p.topEntry(); ok && !top.isTok {
		if below, ok := p.belowTop(); ok && below.isTok && below.tok.Type == token.LogicalOr {
			right := p.popNode()
			op := p.popToken()
			left := p.popNode()
			p.push(nodeEntry(&ast.LogicalOr{Left: left, Right: right, Token: op}))
		}
	}

	var children []ast.Node
	for {
		e, ok := p.topEntry()
		if !ok || e.isTok {
			break
		}
		children = append(children, p.popNode())
	}
	reverseNodes(children)

	openTok, _ := p.peekToken()
	p.popToken()

	return &ast.Group{Nodes: children, TokenLeft: openTok, TokenRight: closeTok}, true, false
}

// reduceEmptyGroup handles "(" immediately followed by ")" (after stray
// operators were already stripped): the whole group vanishes, taking any
// operators that preceded it on the stack or follow it (AND/OR) in the
// input queue along for one EMPTY_GROUP_IGNORED correction.
func reduceEmptyGroup(p *Parser, openTok, closeTok token.Token) ast.Node {
	p.popToken() // the "("

	var preceding []token.Token
	for {
		t, ok := p.peekToken()
		if !ok || !t.Is(token.Operator) {
			break
		}
		preceding = append(preceding, p.popToken())
	}
	reverseTokens(preceding)

	var following []token.Token
	for {
		op, ok := p.consumeBinaryAhead()
		if !ok {
			break
		}
		following = append(following, op)
	}

	all := make([]token.Token, 0, len(preceding)+2+len(following))
	all = append(all, preceding...)
	all = append(all, openTok, closeTok)
	all = append(all, following...)
	p.corr.Add(correction.EmptyGroupIgnored, all...)
	return nil
}

func reverseNodes(nodes []ast.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

func reverseTokens(toks []token.Token) {
	for i, j := 0, len(toks)-1; i < j; i, j = i+1, j-1 {
		toks[i], toks[j] = toks[j], toks[i]
	}
}
