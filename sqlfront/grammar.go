// Package sqlfront is a small SQL front end translating a restricted
// SELECT grammar into an engine.Plan chain. It deliberately replaces
// the reference implementation's regex-based subquery/paren matcher
// (spec §9 design notes flags it as buggy: an unbound `istart`
// variable in match_parenthesis) with a real grammar, built with
// alecthomas/participle rather than hand-rolled scanning.
package sqlfront

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(SELECT|FROM|WHERE|AND|GROUP|BY|HAVING|ORDER|ASC|DESC|AS)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
	{Name: "String", Pattern: `'[^']*'`},
	{Name: "Op", Pattern: `<=|>=|!=|==|=|<|>`},
	{Name: "Punct", Pattern: `[(),*]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// SelectItem is one output column, optionally an aggregate call
// `fn(column)` aliased with AS — the mapping spec §4.7 describes from
// `fn(col) as alias` syntax onto Plan.Aggregate methods.
type SelectItem struct {
	Func   string `( @Ident "(" )?`
	Column string `@(Ident|"*")`
	Close  string `( ")" )?`
	Alias  string `( "AS" @Ident )?`
}

// Condition is one `column op value` comparison. The grammar has no OR
// production: spec §4.7 explicitly excludes OR from supported WHERE/
// HAVING syntax, matching the reference implementation's restriction.
type Condition struct {
	Column string `@Ident`
	Op     string `@Op`
	Value  *Value `@@`
}

// Value is a SQL literal: a quoted string or a bare number.
type Value struct {
	String *string  `  @String`
	Number *float64 `| @Number`
}

// OrderItem is one ORDER BY key.
type OrderItem struct {
	Column    string `@Ident`
	Direction string `( @("ASC"|"DESC") )?`
}

// Query is the top-level parsed statement.
type Query struct {
	Columns   []*SelectItem `"SELECT" @@ ("," @@)*`
	From      string        `"FROM" @Ident`
	Where     []*Condition  `("WHERE" @@ ("AND" @@)*)?`
	GroupBy   []string      `("GROUP" "BY" @Ident ("," @Ident)*)?`
	Having    []*Condition  `("HAVING" @@ ("AND" @@)*)?`
	OrderBy   []*OrderItem  `("ORDER" "BY" @@ ("," @@)*)?`
}

var parser = participle.MustBuild[Query](
	participle.Lexer(sqlLexer),
	participle.Unquote("String"),
	participle.Elide("whitespace"),
	participle.CaseInsensitive("Keyword"),
)

// Parse parses query into a Query AST.
func Parse(query string) (*Query, error) {
	return parser.ParseString("", query)
}
