// Package correction records the recovery actions the parser takes while
// absorbing malformed Galach input.
package correction

import "github.com/TomasPilar/query-translator/internal/galach/token"

// Kind identifies the category of recovery a Correction records. Ordinals
// are stable: downstream consumers persist them.
type Kind int

const (
	UnaryOpPrecedingOpIgnored Kind = iota
	UnaryOpMissingOperandIgnored
	BinaryOpMissingLeftOperandIgnored
	BinaryOpMissingRightOperandIgnored
	BinaryOpFollowingOpIgnored
	LogicalNotPrecedingInclusivityIgnored
	EmptyGroupIgnored
	UnmatchedGroupLeftDelimiterIgnored
	UnmatchedGroupRightDelimiterIgnored
	BailoutTokenIgnored
)

func (k Kind) String() string {
	switch k {
	case UnaryOpPrecedingOpIgnored:
		return "UNARY_OP_PRECEDING_OP_IGNORED"
	case UnaryOpMissingOperandIgnored:
		return "UNARY_OP_MISSING_OPERAND_IGNORED"
	case BinaryOpMissingLeftOperandIgnored:
		return "BINARY_OP_MISSING_LEFT_OPERAND_IGNORED"
	case BinaryOpMissingRightOperandIgnored:
		return "BINARY_OP_MISSING_RIGHT_OPERAND_IGNORED"
	case BinaryOpFollowingOpIgnored:
		return "BINARY_OP_FOLLOWING_OP_IGNORED"
	case LogicalNotPrecedingInclusivityIgnored:
		return "LOGICAL_NOT_PRECEDING_INCLUSIVITY_IGNORED"
	case EmptyGroupIgnored:
		return "EMPTY_GROUP_IGNORED"
	case UnmatchedGroupLeftDelimiterIgnored:
		return "UNMATCHED_GROUP_LEFT_DELIMITER_IGNORED"
	case UnmatchedGroupRightDelimiterIgnored:
		return "UNMATCHED_GROUP_RIGHT_DELIMITER_IGNORED"
	case BailoutTokenIgnored:
		return "BAILOUT_TOKEN_IGNORED"
	default:
		return "UNKNOWN_CORRECTION"
	}
}

// Correction is a single structured record of a recovery action: what kind
// of defect was repaired, and which tokens were discarded because of it.
type Correction struct {
	Kind   Kind
	Tokens []token.Token
}

// Log is an append-only, temporally ordered list of corrections. The zero
// value is ready to use.
type Log struct {
	entries []Correction
}

// Add appends a new correction to the log.
func (l *Log) Add(kind Kind, tokens ...token.Token) {
	cp := make([]token.Token, len(tokens))
	copy(cp, tokens)
	l.entries = append(l.entries, Correction{Kind: kind, Tokens: cp})
}

// Entries returns the corrections recorded so far, in the order they were
// added.
func (l *Log) Entries() []Correction {
	return l.entries
}

// Len reports how many corrections have been recorded.
func (l *Log) Len() int {
	return len(l.entries)
}
