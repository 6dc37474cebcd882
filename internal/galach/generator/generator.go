// Package generator defines the external collaborator interface AST
// consumers implement to translate a Galach SyntaxTree into a backend
// query language (native round-trip, Lucene/Elasticsearch query string,
// Solr's ExtendedDisMax, or anything else). The tree-walking itself is not
// this package's concern; it only owns the dispatch contract.
package generator

import (
	"fmt"

	"github.com/TomasPilar/query-translator/internal/galach/ast"
)

// Visitor renders one or more ast.Node kinds. Accept is probed in
// registration order by a Dispatcher; the first visitor that accepts a
// node renders it. Visit receives the Dispatcher itself so it can recurse
// into child nodes without knowing which concrete visitor handles them.
type Visitor interface {
	Accept(node ast.Node) bool
	Visit(node ast.Node, d *Dispatcher) string
}

// Dispatcher holds an ordered list of visitors and routes each node to the
// first one that accepts it. Absence of a matching visitor is a
// programming error in the caller's visitor set, not a malformed-input
// condition, so Dispatch panics rather than returning an error.
type Dispatcher struct {
	visitors []Visitor
}

// NewDispatcher builds a Dispatcher that probes visitors in the given
// order.
func NewDispatcher(visitors ...Visitor) *Dispatcher {
	return &Dispatcher{visitors: visitors}
}

// Register appends a visitor to the end of the probing order.
func (d *Dispatcher) Register(v Visitor) {
	d.visitors = append(d.visitors, v)
}

// Dispatch renders node via the first visitor that accepts it.
func (d *Dispatcher) Dispatch(node ast.Node) string {
	for _, v := range d.visitors {
		if v.Accept(node) {
			return v.Visit(node, d)
		}
	}
	panic(fmt.Sprintf("galach generator: no visitor registered for node kind %s", node.Kind()))
}
