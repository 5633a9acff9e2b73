package sizing

import (
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
)

// Result is the combined table of rescaled rows. Condition, Source and
// MetSpecs are parallel to the rows of Table.
type Result struct {
	Table *lut.Table
	// Condition is the driving variable that produced each row.
	Condition []string
	// Source is the row ID of the base row each row was rescaled from.
	Source   []int
	MetSpecs []bool
}

// BatchSummary counts the rows produced by one driving condition.
type BatchSummary struct {
	Condition string
	Rows      int
	Passing   int
}

// Len returns the number of rows.
func (r *Result) Len() int { return r.Table.Len() }

// Row returns the numeric values of row i keyed by column name.
func (r *Result) Row(i int) map[string]float64 { return r.Table.Row(i) }

// Passing returns the row positions with MetSpecs set.
func (r *Result) Passing() []int {
	var out []int
	for i, ok := range r.MetSpecs {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// OnlyPassing returns a result holding only the rows that met every
// condition.
func (r *Result) OnlyPassing() *Result {
	return r.take(r.Passing())
}

// Select returns a result holding the rows for which keep returns true.
func (r *Result) Select(keep func(i int) bool) *Result {
	var positions []int
	for i := 0; i < r.Len(); i++ {
		if keep(i) {
			positions = append(positions, i)
		}
	}
	return r.take(positions)
}

func (r *Result) take(positions []int) *Result {
	out := &Result{
		Table:     r.Table.Take(positions),
		Condition: make([]string, len(positions)),
		Source:    make([]int, len(positions)),
	}
	if r.MetSpecs != nil {
		out.MetSpecs = make([]bool, len(positions))
	}
	for j, p := range positions {
		out.Condition[j] = r.Condition[p]
		out.Source[j] = r.Source[p]
		if r.MetSpecs != nil {
			out.MetSpecs[j] = r.MetSpecs[p]
		}
	}
	return out
}

// Summary counts rows and passing rows per driving condition, in the order
// the conditions first appear.
func (r *Result) Summary() []BatchSummary {
	var out []BatchSummary
	index := map[string]int{}
	for i, name := range r.Condition {
		j, ok := index[name]
		if !ok {
			j = len(out)
			index[name] = j
			out = append(out, BatchSummary{Condition: name})
		}
		out[j].Rows++
		if i < len(r.MetSpecs) && r.MetSpecs[i] {
			out[j].Passing++
		}
	}
	return out
}
