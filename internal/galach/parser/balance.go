package parser

import (
	"github.com/TomasPilar/query-translator/internal/galach/correction"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

// balanceGroups is the pre-pass described for group delimiter balancing: it
// removes any '(' or ')' that has no partner, recording a correction for
// each, so the main shift/reduce loop can assume delimiters are balanced.
// Closest delimiters match first by construction of the stack-based scan.
func balanceGroups(tokens []token.Token, log *correction.Log) []token.Token {
	var opens []int
	unmatched := make(map[int]bool)

	for i, t := range tokens {
		switch t.Type {
		case token.GroupBegin:
			opens = append(opens, i)
		case token.GroupEnd:
			if len(opens) > 0 {
				opens = opens[:len(opens)-1]
			} else {
				unmatched[i] = true
			}
		}
	}
	for _, idx := range opens {
		unmatched[idx] = true
	}
	if len(unmatched) == 0 {
		return tokens
	}

	result := make([]token.Token, 0, len(tokens)-len(unmatched))
	for i, t := range tokens {
		if unmatched[i] {
			if t.Type == token.GroupBegin {
				log.Add(correction.UnmatchedGroupLeftDelimiterIgnored, t)
			} else {
				log.Add(correction.UnmatchedGroupRightDelimiterIgnored, t)
			}
			continue
		}
		result = append(result, t)
	}
	return result
}
