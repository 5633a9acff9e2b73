// Package specs derives figures of merit from the raw simulated columns of
// a LUT.
package specs

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
)

// Derived column names.
const (
	IntrinsicGain = "intrinsic_gain"
	TransitFreq   = "ft"
	GmOverID      = "gmoverid"
	Area          = "area"
)

// Names returns the columns added by Extend, in the order they are added.
func Names() []string {
	return []string{IntrinsicGain, TransitFreq, GmOverID}
}

// Extend returns a copy of t with intrinsic_gain = gm*rout,
// ft = gm/(2*pi*cgg) and gmoverid = gm/id. Existing derived columns are
// recomputed, so Extend is idempotent. Zero denominators yield ±Inf or NaN.
func Extend(t *lut.Table) (*lut.Table, error) {
	if err := t.Require("gm", "rout", "cgg", "id"); err != nil {
		return nil, err
	}
	gm := t.MustColumn("gm")
	rout := t.MustColumn("rout")
	cgg := t.MustColumn("cgg")
	id := t.MustColumn("id")

	n := t.Len()
	gain := make([]float64, n)
	ft := make([]float64, n)
	gmid := make([]float64, n)
	for i := 0; i < n; i++ {
		gain[i] = gm[i] * rout[i]
		ft[i] = gm[i] / (2 * math.Pi * cgg[i])
		gmid[i] = gm[i] / id[i]
	}

	out, err := t.WithColumn(IntrinsicGain, gain)
	if err != nil {
		return nil, err
	}
	if out, err = out.WithColumn(TransitFreq, ft); err != nil {
		return nil, err
	}
	return out.WithColumn(GmOverID, gmid)
}

// WithArea returns a copy of t with area = W*L.
func WithArea(t *lut.Table) (*lut.Table, error) {
	if err := t.Require("W", "L"); err != nil {
		return nil, err
	}
	w := t.MustColumn("W")
	l := t.MustColumn("L")
	area := make([]float64, t.Len())
	for i := range area {
		area[i] = w[i] * l[i]
	}
	return t.WithColumn(Area, area)
}
