// Package render formats a parser.SyntaxTree for a terminal: a colorized
// S-expression dump of the AST, and a colorized listing of the correction
// log with each affected token pointed out in its source line, in the
// style of a compiler diagnostic.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/TomasPilar/query-translator/internal/galach/ast"
	"github.com/TomasPilar/query-translator/internal/galach/correction"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

var (
	kindStyle     = color.New(color.FgYellow, color.Bold)
	domainStyle   = color.New(color.FgCyan)
	termStyle     = color.New(color.FgGreen)
	operatorStyle = color.New(color.FgMagenta, color.Bold)
	lineStyle     = color.New(color.FgBlue, color.Bold)
	caretStyle    = color.New(color.FgRed, color.Bold)
	messageStyle  = color.New(color.FgRed, color.Bold)
)

// Tree renders node as an indented, colorized S-expression.
func Tree(node ast.Node) string {
	var b strings.Builder
	writeNode(&b, node, 0)
	return b.String()
}

func writeNode(b *strings.Builder, node ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(kindStyle.Sprint(node.Kind()))

	switch n := node.(type) {
	case *ast.Term:
		b.WriteString(" ")
		b.WriteString(termStyle.Sprint(n.Token.String()))
		b.WriteString("\n")
	case *ast.Include:
		b.WriteString("\n")
		writeNode(b, n.Operand, depth+1)
	case *ast.Exclude:
		b.WriteString("\n")
		writeNode(b, n.Operand, depth+1)
	case *ast.LogicalNot:
		b.WriteString("\n")
		writeNode(b, n.Operand, depth+1)
	case *ast.LogicalAnd:
		b.WriteString(" ")
		b.WriteString(operatorStyle.Sprint("AND"))
		b.WriteString("\n")
		writeNode(b, n.Left, depth+1)
		writeNode(b, n.Right, depth+1)
	case *ast.LogicalOr:
		b.WriteString(" ")
		b.WriteString(operatorStyle.Sprint("OR"))
		b.WriteString("\n")
		writeNode(b, n.Left, depth+1)
		writeNode(b, n.Right, depth+1)
	case *ast.Group:
		if d := n.Domain(); d != "" {
			b.WriteString(" ")
			b.WriteString(domainStyle.Sprint(d))
		}
		b.WriteString("\n")
		for _, c := range n.Nodes {
			writeNode(b, c, depth+1)
		}
	case *ast.Query:
		b.WriteString("\n")
		for _, c := range n.Nodes {
			writeNode(b, c, depth+1)
		}
	}
}

// Corrections renders log against source, one diagnostic per correction:
// its kind, and an arrow pointing at each token it discarded in the source
// line that token came from.
func Corrections(log []correction.Correction, source string) string {
	if len(log) == 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	offsets := lineOffsets(lines)

	var b strings.Builder
	for _, c := range log {
		b.WriteString(kindStyle.Sprint("correction: "))
		b.WriteString(messageStyle.Sprint(c.Kind.String()))
		b.WriteString("\n")
		for _, t := range c.Tokens {
			b.WriteString(formatPointer(t, lines, offsets))
		}
	}
	return b.String()
}

func lineOffsets(lines []string) []int {
	offsets := make([]int, len(lines))
	pos := 0
	for i, l := range lines {
		offsets[i] = pos
		pos += len(l) + 1
	}
	return offsets
}

func formatPointer(t token.Token, lines []string, offsets []int) string {
	lineNo := 0
	for i, off := range offsets {
		if off <= t.Position {
			lineNo = i
		}
	}
	if lineNo >= len(lines) {
		return fmt.Sprintf("  %s\n", t)
	}
	line := lines[lineNo]
	col := t.Position - offsets[lineNo]

	var b strings.Builder
	lineNumberStr := fmt.Sprintf("%d", lineNo+1)
	b.WriteString(lineStyle.Sprintf("  %s | ", lineNumberStr))
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lineStyle.Sprintf("  %s | ", strings.Repeat(" ", len(lineNumberStr))))
	if col > 0 && col <= len(line) {
		b.WriteString(strings.Repeat(" ", col))
	}
	width := len(t.Lexeme)
	if width == 0 {
		width = 1
	}
	b.WriteString(caretStyle.Sprint(strings.Repeat("^", width)))
	b.WriteString(" ")
	b.WriteString(messageStyle.Sprint(t.Type))
	b.WriteString("\n")
	return b.String()
}
