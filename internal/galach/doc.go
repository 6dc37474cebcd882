// Package galach implements the Galach search query language: a forgiving
// tokenizer and shift/reduce parser that turn a user-facing query string
// into an abstract syntax tree suitable for translation into a backend
// search engine's own query language.
//
// # Overview
//
// Galach combines free-text terms, quoted phrases, domain-qualified terms
// (field:value), grouped subqueries with an optional domain prefix
// (field:(...)), binary logical operators (AND/OR), two forms of unary
// negation (the textual NOT and the symbolic !), and inclusivity prefixes
// (+ to require a term, - to forbid it).
//
// The parser never rejects input. Anything it cannot make sense of is
// discarded, and the discard is recorded as a structured correction
// (package correction) rather than surfaced as an error. This makes Galach
// suitable for parsing user-typed search boxes, where "invalid query"
// is not an acceptable outcome.
//
// # Pipeline
//
// The pipeline runs in two stages:
//
//	token.Sequence  := lexer.Tokenize(input)
//	parser.SyntaxTree := parser.Parse(token.Sequence)
//
// lexer.Tokenize matches an ordered pattern table against the input at
// every cursor position, longest-match-at-offset, and falls back to a
// Bailout token for any run it cannot otherwise classify.
//
// parser.Parse drives a single explicit stack holding a mixture of
// unreduced tokens and completed ast.Node values through a shift/reduce
// loop. Binary operators follow standard precedence (AND binds tighter
// than OR); malformed constructs — a binary operator missing an operand, a
// NOT stacked in front of an inclusivity prefix, an empty group, unmatched
// parentheses — are repaired in place and logged.
//
// # Subpackages
//
//	token      - the terminal symbols the tokenizer emits
//	lexer      - the tokenizer
//	ast        - the AST node types the parser builds
//	correction - the structured recovery log attached to every parse
//	parser     - the shift/reduce driver and its public SyntaxTree result
//	generator  - the visitor-dispatch interface external code walks the
//	             tree with to render it into a backend's query syntax
//
// # Usage
//
//	tree := parser.ParseString(`+title:"quarterly report" -status:draft AND owner:alice`)
//	for _, c := range tree.Corrections {
//	    log.Printf("corrected %s: %v", c.Kind, c.Tokens)
//	}
package galach
