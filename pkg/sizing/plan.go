package sizing

import (
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/condition"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/scaling"
)

// TermKind tells whether a condition drives a resize or only filters.
type TermKind int

const (
	Filter TermKind = iota
	Resizing
)

func (k TermKind) String() string {
	if k == Resizing {
		return "resizing"
	}
	return "filter"
}

// Term is a condition tagged with its role in a request.
type Term struct {
	Kind      TermKind
	Scaling   scaling.Kind
	Condition condition.Condition
}

// Plan tags each condition as Resizing or Filter, preserving order.
func Plan(cls scaling.Classification, conds []condition.Condition) []Term {
	terms := make([]Term, len(conds))
	for i, c := range conds {
		k := cls.Kind(c.Variable)
		kind := Filter
		if k != scaling.Invariant {
			kind = Resizing
		}
		terms[i] = Term{Kind: kind, Scaling: k, Condition: c}
	}
	return terms
}

func resizingTerms(terms []Term) []Term {
	var out []Term
	for _, t := range terms {
		if t.Kind == Resizing {
			out = append(out, t)
		}
	}
	return out
}
