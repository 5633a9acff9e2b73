// Package condition parses the target constraints of a resizing request,
// e.g. "gm > 1.44e-3" or "rout = 40k".
package condition

import (
	"fmt"
	"math"
)

// Operator is the comparison of a condition.
type Operator string

const (
	Equal   Operator = "="
	Less    Operator = "<"
	Greater Operator = ">"
)

// Condition is one parsed "<variable> <op> <value>" triple.
type Condition struct {
	Variable string
	Operator Operator
	Target   float64
	Raw      string // value token as written
}

func (c Condition) String() string {
	raw := c.Raw
	if raw == "" {
		raw = fmt.Sprintf("%g", c.Target)
	}
	return fmt.Sprintf("%s %s %s", c.Variable, c.Operator, raw)
}

// Accepts reports whether v satisfies the condition. Equality uses a band of
// tolerancePercent of the literal target on each side. Bounds are inclusive
// and non-finite values never match.
func (c Condition) Accepts(v, tolerancePercent float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	switch c.Operator {
	case Equal:
		lo, hi := c.Band(tolerancePercent)
		return lo <= v && v <= hi
	case Greater:
		return v >= c.Target
	case Less:
		return v <= c.Target
	default:
		return false
	}
}

// Band returns the accepted interval of an equality condition.
func (c Condition) Band(tolerancePercent float64) (lo, hi float64) {
	tol := math.Abs(c.Target) * tolerancePercent / 100
	return c.Target - tol, c.Target + tol
}
