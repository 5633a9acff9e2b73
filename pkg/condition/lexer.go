package condition

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ConditionLexer splits "<variable> <op> <value>" into tokens. Operator
// characters never appear inside a token, so "gm>=1" lexes as
// Token Op Op Token and fails the grammar.
var ConditionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Op", Pattern: `[=<>]`},
	{Name: "Token", Pattern: `[^\s=<>]+`},
})
