package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TomasPilar/query-translator/internal/galach/token"
)

func domain(s string) *string { return &s }

func TestTokenize_SimpleWords(t *testing.T) {
	seq := Tokenize("hello world")
	assert.Equal(t, []token.Token{
		{Type: token.Word, Lexeme: "hello", Position: 0, Word: "hello"},
		{Type: token.Whitespace, Lexeme: " ", Position: 5},
		{Type: token.Word, Lexeme: "world", Position: 6, Word: "world"},
	}, seq.Tokens)
	assert.Equal(t, "hello world", seq.Source)
}

func TestTokenize_DomainQualifiedWord(t *testing.T) {
	seq := Tokenize("title:quarterly")
	assert.Equal(t, []token.Token{
		{Type: token.Word, Lexeme: "title:quarterly", Position: 0, Word: "quarterly", Domain: domain("title")},
	}, seq.Tokens)
}

func TestTokenize_Phrase(t *testing.T) {
	seq := Tokenize(`"quarterly report"`)
	assert.Equal(t, []token.Token{
		{Type: token.Phrase, Lexeme: `"quarterly report"`, Position: 0, Phrase: "quarterly report", Quote: '"'},
	}, seq.Tokens)
}

func TestTokenize_DomainQualifiedPhrase(t *testing.T) {
	seq := Tokenize(`title:"quarterly report"`)
	assert.Equal(t, []token.Token{
		{Type: token.Phrase, Lexeme: `title:"quarterly report"`, Position: 0, Phrase: "quarterly report", Quote: '"', Domain: domain("title")},
	}, seq.Tokens)
}

func TestTokenize_PhraseEscapes(t *testing.T) {
	seq := Tokenize(`"a \"quote\" and a \\backslash"`)
	assert.Len(t, seq.Tokens, 1)
	assert.Equal(t, `a "quote" and a \backslash`, seq.Tokens[0].Phrase)
}

func TestTokenize_UnterminatedPhraseBailsOut(t *testing.T) {
	// The lone opening quote matches no pattern (matchPhrase needs a
	// closer, matchWord treats a quote as a stop byte) and becomes a
	// one-byte Bailout; scanning resumes at the next byte that does match,
	// which is the start of an ordinary word.
	seq := Tokenize(`"unterminated`)
	assert.Equal(t, []token.Token{
		{Type: token.Bailout, Lexeme: `"`, Position: 0},
		{Type: token.Word, Lexeme: "unterminated", Position: 1, Word: "unterminated"},
	}, seq.Tokens)
}

func TestTokenize_UserAndTag(t *testing.T) {
	seq := Tokenize("@alice #urgent")
	assert.Equal(t, []token.Token{
		{Type: token.User, Lexeme: "@alice", Position: 0, Marker: '@', Name: "alice"},
		{Type: token.Whitespace, Lexeme: " ", Position: 6},
		{Type: token.Tag, Lexeme: "#urgent", Position: 7, Marker: '#', Name: "urgent"},
	}, seq.Tokens)
}

func TestTokenize_GroupWithDomain(t *testing.T) {
	seq := Tokenize("status:(a OR b)")
	require := assert.New(t)
	require.Equal(token.GroupBegin, seq.Tokens[0].Type)
	require.Equal(domain("status"), seq.Tokens[0].Domain)
	require.Equal(token.GroupEnd, seq.Tokens[len(seq.Tokens)-1].Type)
}

func TestTokenize_KeywordOperatorsRequireBoundaries(t *testing.T) {
	seq := Tokenize("a OR b")
	var types []token.Type
	for _, tok := range seq.Tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []token.Type{token.Word, token.Whitespace, token.LogicalOr, token.Whitespace, token.Word}, types)
}

func TestTokenize_KeywordGluedToWordIsNotAnOperator(t *testing.T) {
	// "OR" glued onto other characters is not bounded by whitespace,
	// start/end of input, or a parenthesis on both sides, so it fails
	// matchKeyword's boundary check and the whole run is read as one word.
	seq := Tokenize("ORsomething")
	assert.Equal(t, []token.Token{
		{Type: token.Word, Lexeme: "ORsomething", Position: 0, Word: "ORsomething"},
	}, seq.Tokens)
}

func TestTokenize_BangOperator(t *testing.T) {
	seq := Tokenize("!draft")
	assert.Equal(t, []token.Token{
		{Type: token.LogicalNot2, Lexeme: "!", Position: 0},
		{Type: token.Word, Lexeme: "draft", Position: 1, Word: "draft"},
	}, seq.Tokens)
}

func TestTokenize_IncludeExcludePrefixesRequireWordBoundary(t *testing.T) {
	// "-" is only an operator at a word boundary; mid-word it is just part
	// of the identifier character class used by matchIdent/matchWord, so
	// "foo-bar" reads as a single word, not Exclude("bar") glued onto "foo".
	seq := Tokenize("foo-bar -baz")
	assert.Equal(t, []token.Token{
		{Type: token.Word, Lexeme: "foo-bar", Position: 0, Word: "foo-bar"},
		{Type: token.Whitespace, Lexeme: " ", Position: 7},
		{Type: token.Exclude, Lexeme: "-", Position: 8},
		{Type: token.Word, Lexeme: "baz", Position: 9, Word: "baz"},
	}, seq.Tokens)
}

func TestTokenize_BailoutFallbackOnBareMarker(t *testing.T) {
	// A lone "@" with nothing identifier-shaped after it matches neither
	// matchWord (which explicitly excludes a leading '@') nor
	// matchUserOrTag (which requires a non-empty name); it falls through
	// to Bailout, which ends at the whitespace right after it.
	seq := Tokenize("@ word")
	assert.Equal(t, []token.Token{
		{Type: token.Bailout, Lexeme: "@", Position: 0},
		{Type: token.Whitespace, Lexeme: " ", Position: 1},
		{Type: token.Word, Lexeme: "word", Position: 2, Word: "word"},
	}, seq.Tokens)
}
