// Package ast defines the Galach abstract syntax tree: a strict, owned tree
// with no shared or cyclic references. Every node kind is a distinct Go
// type implementing the sealed Node interface; dispatch is a type switch or
// a lookup keyed by Kind, never reflection.
package ast

import "github.com/TomasPilar/query-translator/internal/galach/token"

// Kind discriminates the concrete type behind a Node.
type Kind int

const (
	KindTerm Kind = iota
	KindInclude
	KindExclude
	KindLogicalNot
	KindLogicalAnd
	KindLogicalOr
	KindGroup
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindTerm:
		return "Term"
	case KindInclude:
		return "Include"
	case KindExclude:
		return "Exclude"
	case KindLogicalNot:
		return "LogicalNot"
	case KindLogicalAnd:
		return "LogicalAnd"
	case KindLogicalOr:
		return "LogicalOr"
	case KindGroup:
		return "Group"
	case KindQuery:
		return "Query"
	default:
		return "Unknown"
	}
}

// Node is implemented by every AST node. The unexported marker method seals
// the interface to this package's node types.
type Node interface {
	Kind() Kind
	isNode()
}

var (
	_ Node = (*Term)(nil)
	_ Node = (*Include)(nil)
	_ Node = (*Exclude)(nil)
	_ Node = (*LogicalNot)(nil)
	_ Node = (*LogicalAnd)(nil)
	_ Node = (*LogicalOr)(nil)
	_ Node = (*Group)(nil)
	_ Node = (*Query)(nil)
)

// Term wraps a single terminal token (Word, Phrase, User, or Tag).
type Term struct {
	Token token.Token
}

func (*Term) Kind() Kind { return KindTerm }
func (*Term) isNode()    {}

// Include is the unary "+" node; Operand is a Term or a Group.
type Include struct {
	Operand Node
	Token   token.Token
}

func (*Include) Kind() Kind { return KindInclude }
func (*Include) isNode()    {}

// Exclude is the unary "-" node; Operand is a Term or a Group.
type Exclude struct {
	Operand Node
	Token   token.Token
}

func (*Exclude) Kind() Kind { return KindExclude }
func (*Exclude) isNode()    {}

// LogicalNot is the unary negation node, carrying whichever of "!" / "NOT"
// produced it.
type LogicalNot struct {
	Operand Node
	Token   token.Token
}

func (*LogicalNot) Kind() Kind { return KindLogicalNot }
func (*LogicalNot) isNode()    {}

// LogicalAnd is a binary "AND" node.
type LogicalAnd struct {
	Left, Right Node
	Token       token.Token
}

func (*LogicalAnd) Kind() Kind { return KindLogicalAnd }
func (*LogicalAnd) isNode()    {}

// LogicalOr is a binary "OR" node.
type LogicalOr struct {
	Left, Right Node
	Token       token.Token
}

func (*LogicalOr) Kind() Kind { return KindLogicalOr }
func (*LogicalOr) isNode()    {}

// Group is an explicit parenthesized subquery, optionally domain-prefixed.
type Group struct {
	Nodes                []Node
	TokenLeft, TokenRight token.Token
}

func (*Group) Kind() Kind { return KindGroup }
func (*Group) isNode()    {}

// Domain returns the group's domain prefix, or "" if it has none.
func (g *Group) Domain() string {
	if g.TokenLeft.Domain == nil {
		return ""
	}
	return *g.TokenLeft.Domain
}

// Query is the tree root: an implicit top-level grouping with no delimiter
// tokens of its own.
type Query struct {
	Nodes []Node
}

func (*Query) Kind() Kind { return KindQuery }
func (*Query) isNode()    {}
