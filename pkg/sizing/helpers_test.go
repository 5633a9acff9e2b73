package sizing

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
)

// row is one operating point used to assemble test tables.
type row map[string]float64

func tableOf(t *testing.T, columns []string, rows ...row) *lut.Table {
	t.Helper()
	b := lut.NewBuilder(columns)
	for _, r := range rows {
		values := make([]float64, len(columns))
		for i, name := range columns {
			values[i] = r[name]
		}
		if err := b.Append(values); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	tbl, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tbl
}

func approx(t *testing.T, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > math.Abs(want)*1e-9 {
		t.Fatalf("%s = %g, want %g", what, got, want)
	}
}

var deviceColumns = []string{"W", "L", "gm", "gmb", "rout", "cgg", "id", "region", "VSB", "VDS"}
