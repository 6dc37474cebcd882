package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TomasPilar/query-translator/internal/galach/ast"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

type stubVisitor struct {
	accepts ast.Kind
	out     string
}

func (s stubVisitor) Accept(n ast.Node) bool          { return n.Kind() == s.accepts }
func (s stubVisitor) Visit(ast.Node, *Dispatcher) string { return s.out }

func TestDispatcher_ProbesInRegistrationOrder(t *testing.T) {
	d := NewDispatcher(
		stubVisitor{accepts: ast.KindTerm, out: "first"},
		stubVisitor{accepts: ast.KindTerm, out: "second"},
	)
	got := d.Dispatch(&ast.Term{Token: token.Token{Type: token.Word}})
	assert.Equal(t, "first", got)
}

func TestDispatcher_Register(t *testing.T) {
	d := NewDispatcher()
	d.Register(stubVisitor{accepts: ast.KindGroup, out: "group"})
	got := d.Dispatch(&ast.Group{})
	assert.Equal(t, "group", got)
}

func TestDispatcher_PanicsWithoutAMatchingVisitor(t *testing.T) {
	d := NewDispatcher(stubVisitor{accepts: ast.KindGroup, out: "group"})
	assert.Panics(t, func() {
		d.Dispatch(&ast.Term{})
	})
}
