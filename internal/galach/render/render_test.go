package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/TomasPilar/query-translator/internal/galach/correction"
	"github.com/TomasPilar/query-translator/internal/galach/parser"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestTree_RendersNestedStructure(t *testing.T) {
	tree := parser.ParseString("a AND b")
	out := Tree(tree.Root)
	assert.Contains(t, out, "Query")
	assert.Contains(t, out, "LogicalAnd")
	assert.Contains(t, out, "AND")
	assert.Contains(t, out, "Word")
}

func TestCorrections_EmptyLogRendersNothing(t *testing.T) {
	assert.Equal(t, "", Corrections(nil, "anything"))
}

func TestCorrections_PointsAtTheDiscardedToken(t *testing.T) {
	source := "foo AND"
	tok := token.Token{Type: token.LogicalAnd, Lexeme: "AND", Position: 4}
	log := []correction.Correction{{Kind: correction.BinaryOpMissingRightOperandIgnored, Tokens: []token.Token{tok}}}

	out := Corrections(log, source)
	assert.Contains(t, out, "BINARY_OP_MISSING_RIGHT_OPERAND_IGNORED")
	assert.Contains(t, out, source)
	assert.Contains(t, out, "^^^")
}
