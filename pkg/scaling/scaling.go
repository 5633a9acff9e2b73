// Package scaling classifies LUT columns by how they respond to a change of
// device width at fixed bias and length.
package scaling

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the width dependence of a column.
type Kind int

const (
	// Invariant columns are copied unchanged when a row is resized.
	Invariant Kind = iota
	// Proportional columns scale linearly with W.
	Proportional
	// Inverse columns scale with 1/W.
	Inverse
)

func (k Kind) String() string {
	switch k {
	case Invariant:
		return "invariant"
	case Proportional:
		return "proportional"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "invariant":
		return Invariant, nil
	case "proportional":
		return Proportional, nil
	case "inverse", "inversely":
		return Inverse, nil
	default:
		return Invariant, fmt.Errorf("scaling: unknown kind %q", s)
	}
}

// Classification maps column names to their Kind. Names not present are
// Invariant.
type Classification map[string]Kind

// Default returns the first-order gm/id sizing model: gm, gmb, cgg and id
// scale with W, rout with 1/W.
func Default() Classification {
	return Classification{
		"cgg":  Proportional,
		"gm":   Proportional,
		"gmb":  Proportional,
		"id":   Proportional,
		"rout": Inverse,
	}
}

// Kind returns the classification of a column.
func (c Classification) Kind(column string) Kind {
	return c[column]
}

// Resizable reports whether a condition on column can drive a resize.
func (c Classification) Resizable(column string) bool {
	return c.Kind(column) != Invariant
}

// Columns returns the names classified as k, sorted.
func (c Classification) Columns(k Kind) []string {
	var out []string
	for name, kind := range c {
		if kind == k {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (c Classification) Clone() Classification {
	out := make(Classification, len(c))
	for name, kind := range c {
		out[name] = kind
	}
	return out
}

// With returns a copy with column classified as k. Classifying a column as
// Invariant removes it.
func (c Classification) With(column string, k Kind) Classification {
	out := c.Clone()
	if k == Invariant {
		delete(out, column)
	} else {
		out[column] = k
	}
	return out
}

// FromLists builds a classification from explicit proportional and inverse
// column lists. A column in both lists is an error.
func FromLists(proportional, inverse []string) (Classification, error) {
	out := make(Classification, len(proportional)+len(inverse))
	for _, name := range proportional {
		out[name] = Proportional
	}
	for _, name := range inverse {
		if out[name] == Proportional {
			return nil, fmt.Errorf("scaling: column %q is both proportional and inverse", name)
		}
		out[name] = Inverse
	}
	return out, nil
}
