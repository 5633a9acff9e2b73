package condition

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
)

// ParseError reports a condition string that does not match
// "<variable> <op> <value>" with op one of =, <, >.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("condition: invalid %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser parses condition strings.
type Parser struct {
	parser *participle.Parser[expression]
}

// NewParser creates a condition parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[expression](
		participle.Lexer(ConditionLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

var defaultParser = func() *Parser {
	p, err := NewParser()
	if err != nil {
		panic(err)
	}
	return p
}()

// Parse parses a single condition string.
func (p *Parser) Parse(text string) (Condition, error) {
	expr, err := p.parser.ParseString("", text)
	if err != nil {
		return Condition{}, &ParseError{Input: text, Err: err}
	}

	target, err := si.ParseNumber(expr.Value)
	if err != nil {
		return Condition{}, &ParseError{Input: text, Err: err}
	}

	return Condition{
		Variable: expr.Variable,
		Operator: Operator(expr.Operator),
		Target:   target,
		Raw:      expr.Value,
	}, nil
}

// ParseAll parses every string and stops at the first malformed one.
func (p *Parser) ParseAll(texts []string) ([]Condition, error) {
	out := make([]Condition, 0, len(texts))
	for _, text := range texts {
		c, err := p.Parse(text)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Parse parses a condition with the package default parser.
func Parse(text string) (Condition, error) {
	return defaultParser.Parse(text)
}

// ParseAll parses conditions with the package default parser.
func ParseAll(texts []string) ([]Condition, error) {
	return defaultParser.ParseAll(texts)
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) Condition {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}
