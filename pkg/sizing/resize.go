package sizing

import (
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/condition"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/scaling"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/specs"
)

// Resize builds the combined table: one batch of rescaled rows per resizing
// condition, in request order, with area recomputed from the new geometry.
// Filter conditions contribute no rows. MetSpecs is left unset; call
// Evaluate afterwards.
func (e *Engine) Resize(base *lut.Table, conds []condition.Condition) (*Result, error) {
	if err := e.opts.Validate(); err != nil {
		return nil, err
	}

	terms := resizingTerms(e.Plan(conds))
	if len(terms) == 0 {
		texts := make([]string, len(conds))
		for i, c := range conds {
			texts[i] = c.String()
		}
		return nil, &InsufficientConditionsError{Conditions: texts}
	}

	if err := base.Require("W", "L"); err != nil {
		return nil, err
	}
	for _, c := range conds {
		// area only exists once the combined table is built.
		if c.Variable == specs.Area {
			continue
		}
		if err := base.Require(c.Variable); err != nil {
			return nil, err
		}
	}

	batches := make([]*lut.Table, len(terms))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, term := range terms {
		g.Go(func() error {
			batch, err := e.resizeBatch(base, term)
			if err != nil {
				return err
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined, err := lut.Concat(batches...)
	if err != nil {
		return nil, err
	}
	if combined, err = specs.WithArea(combined); err != nil {
		return nil, err
	}

	res := &Result{
		Table:     combined,
		Condition: make([]string, 0, combined.Len()),
		Source:    combined.IDs(),
	}
	for i, batch := range batches {
		for j := 0; j < batch.Len(); j++ {
			res.Condition = append(res.Condition, terms[i].Condition.Variable)
		}
	}
	return res, nil
}

// resizeBatch rescales every row of base for a single resizing term and
// drops rows outside the geometry limits.
func (e *Engine) resizeBatch(base *lut.Table, term Term) (*lut.Table, error) {
	c := term.Condition
	x, err := base.Column(c.Variable)
	if err != nil {
		return nil, err
	}
	w := base.MustColumn("W")
	l := base.MustColumn("L")

	kept := make([]int, 0, base.Len())
	newW := make([]float64, 0, base.Len())
	for i := 0; i < base.Len(); i++ {
		var k float64
		if term.Scaling == scaling.Inverse {
			k = x[i] / c.Target
		} else {
			k = c.Target / x[i]
		}
		wp := w[i] * k
		// Written as keep-conditions so NaN widths are dropped too.
		if wp < e.opts.WidthMax && wp/l[i] > e.opts.WidthOverLengthMin {
			kept = append(kept, i)
			newW = append(newW, wp)
		}
	}

	// ratio[j] is W'/W against the source row's own pre-resize width.
	ratio := make([]float64, len(kept))
	for j, p := range kept {
		ratio[j] = newW[j] / w[p]
	}

	names := base.Columns()
	cols := make([][]float64, len(names))
	for ci, name := range names {
		src := base.MustColumn(name)
		dst := make([]float64, len(kept))
		switch {
		case name == "W":
			copy(dst, newW)
		case e.cls.Kind(name) == scaling.Proportional:
			for j, p := range kept {
				dst[j] = src[p] * ratio[j]
			}
		case e.cls.Kind(name) == scaling.Inverse:
			for j, p := range kept {
				dst[j] = src[p] / ratio[j]
			}
		default:
			for j, p := range kept {
				dst[j] = src[p]
			}
		}
		cols[ci] = dst
	}

	ids := make([]int, len(kept))
	for j, p := range kept {
		ids[j] = base.ID(p)
	}

	slog.Debug("Resized batch",
		"condition", c.String(),
		"scaling", term.Scaling.String(),
		"kept", len(kept),
		"dropped", base.Len()-len(kept))

	return lut.FromColumnsWithIDs(names, cols, ids)
}
