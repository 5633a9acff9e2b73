package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
)

func sampleResult(t *testing.T) *sizing.Result {
	t.Helper()
	tbl, err := lut.FromColumns(
		[]string{"area", "id", "gmoverid"},
		[][]float64{
			{1e-13, 2e-13, 3e-13, math.NaN()},
			{1e-4, 2e-4, 3e-4, 4e-4},
			{5, 10, 15, 20},
		},
	)
	if err != nil {
		t.Fatalf("FromColumns failed: %v", err)
	}
	return &sizing.Result{
		Table:     tbl,
		Condition: []string{"gm", "gm", "gm", "gm"},
		Source:    []int{0, 1, 2, 3},
		MetSpecs:  []bool{true, false, true, true},
	}
}

func TestProjectPassFail(t *testing.T) {
	opts := DefaultOptions()
	proj, err := Project(sampleResult(t), opts)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	// The NaN area row is not plottable.
	if len(proj.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(proj.Points))
	}
	if proj.Points[0].Color != opts.PassColor || proj.Points[1].Color != opts.FailColor {
		t.Fatalf("pass/fail colours not applied: %+v", proj.Points[:2])
	}
	if proj.Points[0].Radius <= proj.Points[1].Radius {
		t.Fatal("passing points should be drawn larger than failing ones")
	}
}

func TestProjectOnlyPassing(t *testing.T) {
	opts := DefaultOptions()
	opts.OnlyPassing = true
	proj, err := Project(sampleResult(t), opts)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	for _, p := range proj.Points {
		if !p.Met {
			t.Fatalf("failing row %d projected with OnlyPassing", p.Row)
		}
	}
	if len(proj.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(proj.Points))
	}
}

func TestProjectHueThreshold(t *testing.T) {
	opts := DefaultOptions()
	opts.Hue = "gmoverid"
	opts.HasHueThreshold = true
	opts.HueThreshold = 50

	// Hue over the plottable rows spans 5..15, so the threshold is 10.
	proj, err := Project(sampleResult(t), opts)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(proj.Points) != 2 || proj.Points[0].Row != 1 || proj.Points[1].Row != 2 {
		t.Fatalf("down threshold kept %+v, want rows 1 and 2", proj.Points)
	}

	opts.ThresholdDirection = Up
	proj, err = Project(sampleResult(t), opts)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(proj.Points) != 2 || proj.Points[0].Row != 0 || proj.Points[1].Row != 1 {
		t.Fatalf("up threshold kept %+v, want rows 0 and 1", proj.Points)
	}
}

func TestProjectErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.X = "W"
	if _, err := Project(sampleResult(t), opts); err == nil {
		t.Fatal("expected missing column error")
	}

	opts = DefaultOptions()
	opts.Hue = "gmoverid"
	opts.ColorMap = "rainbow"
	if _, err := Project(sampleResult(t), opts); err == nil {
		t.Fatal("expected unknown colour map error")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("up"); err != nil || d != Up {
		t.Fatalf("ParseDirection(up) = %v, %v", d, err)
	}
	if d, err := ParseDirection(""); err != nil || d != Down {
		t.Fatalf("ParseDirection(\"\") = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRenderPNGAndSave(t *testing.T) {
	opts := DefaultOptions()
	opts.Hue = "gmoverid"
	proj, err := Project(sampleResult(t), opts)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	var buf bytes.Buffer
	if err := proj.WriteTo(&buf, "png"); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}

	path := filepath.Join(t.TempDir(), "plot.svg")
	if _, err := Save(sampleResult(t), opts, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("plot file not written: %v", err)
	}
}

func TestSITickLabels(t *testing.T) {
	ticks := siTicks{fixedTicker{}}.Ticks(0, 1)
	if ticks[0].Label != "1.00u" || ticks[1].Label != "" {
		t.Fatalf("labels = %q, %q", ticks[0].Label, ticks[1].Label)
	}
}

type fixedTicker struct{}

func (fixedTicker) Ticks(min, max float64) []plot.Tick {
	return []plot.Tick{{Value: 1e-6, Label: "0.000001"}, {Value: 2e-6}}
}
