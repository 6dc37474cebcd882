// Package native implements a generator.Dispatcher that renders a
// SyntaxTree back into Galach's own surface syntax. It exists primarily as
// a round-trip reference: re-tokenizing and re-parsing its output always
// yields a structurally equivalent tree (positions aside), which is the
// property this package's own tests check so that no corrected,
// already-valid tree silently changes meaning when regenerated.
package native

import (
	"strings"

	"github.com/TomasPilar/query-translator/internal/galach/ast"
	"github.com/TomasPilar/query-translator/internal/galach/generator"
	"github.com/TomasPilar/query-translator/internal/galach/parser"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

// New builds a Dispatcher with one visitor registered per ast.Kind.
func New() *generator.Dispatcher {
	return generator.NewDispatcher(
		termVisitor{},
		includeVisitor{},
		excludeVisitor{},
		logicalNotVisitor{},
		logicalAndVisitor{},
		logicalOrVisitor{},
		groupVisitor{},
		queryVisitor{},
	)
}

// Render walks tree.Root with a fresh Dispatcher and returns the resulting
// Galach query string.
func Render(tree parser.SyntaxTree) string {
	return New().Dispatch(tree.Root)
}

// RenderNode renders a single node via a fresh Dispatcher.
func RenderNode(node ast.Node) string {
	return New().Dispatch(node)
}

type termVisitor struct{}

func (termVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.Term); return ok }

func (termVisitor) Visit(n ast.Node, _ *generator.Dispatcher) string {
	t := n.(*ast.Term).Token
	switch t.Type {
	case token.Word:
		return withDomain(t.Domain, t.Word)
	case token.Phrase:
		quote := t.Quote
		if quote == 0 {
			quote = '"'
		}
		return withDomain(t.Domain, string(quote)+escapePhrase(t.Phrase, quote)+string(quote))
	case token.User, token.Tag:
		return string(t.Marker) + t.Name
	default:
		return t.Lexeme
	}
}

type includeVisitor struct{}

func (includeVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.Include); return ok }

func (includeVisitor) Visit(n ast.Node, d *generator.Dispatcher) string {
	return "+" + d.Dispatch(n.(*ast.Include).Operand)
}

type excludeVisitor struct{}

func (excludeVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.Exclude); return ok }

func (excludeVisitor) Visit(n ast.Node, d *generator.Dispatcher) string {
	return "-" + d.Dispatch(n.(*ast.Exclude).Operand)
}

type logicalNotVisitor struct{}

func (logicalNotVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.LogicalNot); return ok }

func (logicalNotVisitor) Visit(n ast.Node, d *generator.Dispatcher) string {
	not := n.(*ast.LogicalNot)
	operand := d.Dispatch(not.Operand)
	if not.Token.Type == token.LogicalNot2 {
		return "!" + operand
	}
	return "NOT " + operand
}

type logicalAndVisitor struct{}

func (logicalAndVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.LogicalAnd); return ok }

func (logicalAndVisitor) Visit(n ast.Node, d *generator.Dispatcher) string {
	and := n.(*ast.LogicalAnd)
	return d.Dispatch(and.Left) + " AND " + d.Dispatch(and.Right)
}

type logicalOrVisitor struct{}

func (logicalOrVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.LogicalOr); return ok }

func (logicalOrVisitor) Visit(n ast.Node, d *generator.Dispatcher) string {
	or := n.(*ast.LogicalOr)
	// Safe without parentheses: the grammar never nests a bare LogicalOr
	// directly as an operand of a LogicalAnd, so AND-binds-tighter-than-OR
	// round-trips correctly from the tree shape alone.
	return d.Dispatch(or.Left) + " OR " + d.Dispatch(or.Right)
}

type groupVisitor struct{}

func (groupVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.Group); return ok }

func (groupVisitor) Visit(n ast.Node, d *generator.Dispatcher) string {
	g := n.(*ast.Group)
	parts := make([]string, len(g.Nodes))
	for i, child := range g.Nodes {
		parts[i] = d.Dispatch(child)
	}
	return withDomain(g.TokenLeft.Domain, "("+strings.Join(parts, " ")+")")
}

type queryVisitor struct{}

func (queryVisitor) Accept(n ast.Node) bool { _, ok := n.(*ast.Query); return ok }

func (queryVisitor) Visit(n ast.Node, d *generator.Dispatcher) string {
	q := n.(*ast.Query)
	parts := make([]string, len(q.Nodes))
	for i, child := range q.Nodes {
		parts[i] = d.Dispatch(child)
	}
	return strings.Join(parts, " ")
}

func withDomain(domain *string, rendered string) string {
	if domain == nil {
		return rendered
	}
	return *domain + ":" + rendered
}

// escapePhrase backslash-escapes the quote delimiter and any literal
// backslash in s, the inverse of the lexer's phrase decoding.
func escapePhrase(s string, quote byte) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\\' || byte(r) == quote {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
