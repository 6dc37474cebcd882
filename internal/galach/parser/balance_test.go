package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasPilar/query-translator/internal/galach/correction"
	"github.com/TomasPilar/query-translator/internal/galach/token"
)

func TestBalanceGroups_Balanced(t *testing.T) {
	tokens := []token.Token{
		{Type: token.GroupBegin},
		{Type: token.Word},
		{Type: token.GroupEnd},
	}
	var log correction.Log
	out := balanceGroups(tokens, &log)
	assert.Equal(t, tokens, out)
	assert.Equal(t, 0, log.Len())
}

func TestBalanceGroups_UnmatchedOpen(t *testing.T) {
	tokens := []token.Token{
		{Type: token.GroupBegin, Position: 0},
		{Type: token.Word, Position: 1},
	}
	var log correction.Log
	out := balanceGroups(tokens, &log)

	require.Len(t, out, 1)
	assert.Equal(t, token.Word, out[0].Type)

	require.Len(t, log.Entries(), 1)
	assert.Equal(t, correction.UnmatchedGroupLeftDelimiterIgnored, log.Entries()[0].Kind)
}

func TestBalanceGroups_UnmatchedClose(t *testing.T) {
	tokens := []token.Token{
		{Type: token.Word, Position: 0},
		{Type: token.GroupEnd, Position: 1},
	}
	var log correction.Log
	out := balanceGroups(tokens, &log)

	require.Len(t, out, 1)
	assert.Equal(t, token.Word, out[0].Type)

	require.Len(t, log.Entries(), 1)
	assert.Equal(t, correction.UnmatchedGroupRightDelimiterIgnored, log.Entries()[0].Kind)
}

func TestBalanceGroups_NestedGroupsMatchClosestFirst(t *testing.T) {
	// "(a (b)" - the inner pair is balanced, only the outer "(" is stray.
	tokens := []token.Token{
		{Type: token.GroupBegin, Position: 0},
		{Type: token.Word, Position: 1},
		{Type: token.GroupBegin, Position: 2},
		{Type: token.Word, Position: 3},
		{Type: token.GroupEnd, Position: 4},
	}
	var log correction.Log
	out := balanceGroups(tokens, &log)

	require.Len(t, out, 4)
	require.Len(t, log.Entries(), 1)
	assert.Equal(t, correction.UnmatchedGroupLeftDelimiterIgnored, log.Entries()[0].Kind)
	assert.Equal(t, 0, log.Entries()[0].Tokens[0].Position)
}
