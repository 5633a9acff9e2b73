package sizing

import (
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/condition"
)

// Evaluate sets res.MetSpecs to the AND of every condition, filters
// included, applied to the rescaled values of each row.
func (e *Engine) Evaluate(res *Result, conds []condition.Condition) error {
	cols := make([][]float64, len(conds))
	for i, c := range conds {
		col, err := res.Table.Column(c.Variable)
		if err != nil {
			return err
		}
		cols[i] = col
	}

	met := make([]bool, res.Len())
	for i := range met {
		met[i] = true
	}
	for ci, c := range conds {
		col := cols[ci]
		for i := range met {
			if met[i] && !c.Accepts(col[i], e.opts.TolerancePercent) {
				met[i] = false
			}
		}
	}
	res.MetSpecs = met
	return nil
}
