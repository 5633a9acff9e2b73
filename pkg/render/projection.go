// Package render projects two columns of a sizing result onto a scatter
// plot, colouring rows by met_specs or by a hue column.
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
)

// Direction selects which side of the hue threshold is kept.
type Direction int

const (
	// Down excludes rows below the threshold.
	Down Direction = iota
	// Up excludes rows above the threshold.
	Up
)

// ParseDirection accepts "down" or "up".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "down":
		return Down, nil
	case "up":
		return Up, nil
	default:
		return Down, fmt.Errorf("render: unknown threshold direction %q", s)
	}
}

// Options describes a scatter projection.
type Options struct {
	X, Y        string
	OnlyPassing bool

	// Hue colours points by a column instead of by met_specs.
	Hue      string
	ColorMap string

	// HueThreshold, in percent of the hue range, drops rows on one side of
	// min + pct/100*(max-min). Only used when HasHueThreshold is set.
	HasHueThreshold    bool
	HueThreshold       float64
	ThresholdDirection Direction

	LogX, LogY bool

	PassColor, FailColor   color.Color
	PassRadius, FailRadius vg.Length

	Title         string
	Width, Height vg.Length
}

// DefaultOptions plots area against id with green passing rows and small
// red failing rows.
func DefaultOptions() Options {
	return Options{
		X:          "area",
		Y:          "id",
		ColorMap:   "bluered",
		PassColor:  color.RGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
		FailColor:  color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
		PassRadius: vg.Points(2.5),
		FailRadius: vg.Points(0.5),
		Width:      8 * vg.Inch,
		Height:     6 * vg.Inch,
	}
}

// Point is one projected row.
type Point struct {
	X, Y   float64
	Row    int // position in the result
	Met    bool
	Color  color.Color
	Radius vg.Length
}

// Projection is the filtered, styled point set of a result.
type Projection struct {
	Points   []Point
	HueRange [2]float64
	Options  Options
}

// ColorMapFor returns a named colour map.
func ColorMapFor(name string) (palette.ColorMap, error) {
	switch strings.ToLower(name) {
	case "", "bluered", "coolwarm":
		return moreland.SmoothBlueRed(), nil
	case "blackbody":
		return moreland.BlackBody(), nil
	case "extblackbody":
		return moreland.ExtendedBlackBody(), nil
	case "kindlmann":
		return moreland.Kindlmann(), nil
	default:
		return nil, fmt.Errorf("render: unknown colour map %q", name)
	}
}

// Project filters and styles the rows of res according to opts. Rows with
// non-finite coordinates (or non-positive ones on a log axis) are skipped.
func Project(res *sizing.Result, opts Options) (*Projection, error) {
	xs, err := res.Table.Column(opts.X)
	if err != nil {
		return nil, err
	}
	ys, err := res.Table.Column(opts.Y)
	if err != nil {
		return nil, err
	}
	var hue []float64
	if opts.Hue != "" {
		if hue, err = res.Table.Column(opts.Hue); err != nil {
			return nil, err
		}
	}

	met := func(i int) bool { return i < len(res.MetSpecs) && res.MetSpecs[i] }

	candidates := make([]int, 0, res.Len())
	for i := 0; i < res.Len(); i++ {
		if opts.OnlyPassing && !met(i) {
			continue
		}
		if !plottable(xs[i], opts.LogX) || !plottable(ys[i], opts.LogY) {
			continue
		}
		if hue != nil && !finite(hue[i]) {
			continue
		}
		candidates = append(candidates, i)
	}

	proj := &Projection{Options: opts}
	if hue != nil && len(candidates) > 0 {
		lo, hi := span(hue, candidates)
		if opts.HasHueThreshold {
			threshold := lo + opts.HueThreshold/100*(hi-lo)
			kept := candidates[:0]
			for _, i := range candidates {
				if opts.ThresholdDirection == Down && hue[i] >= threshold ||
					opts.ThresholdDirection == Up && hue[i] <= threshold {
					kept = append(kept, i)
				}
			}
			candidates = kept
			if len(candidates) > 0 {
				lo, hi = span(hue, candidates)
			}
		}
		proj.HueRange = [2]float64{lo, hi}
	}

	var cmap palette.ColorMap
	if hue != nil {
		if cmap, err = ColorMapFor(opts.ColorMap); err != nil {
			return nil, err
		}
		lo, hi := proj.HueRange[0], proj.HueRange[1]
		if hi <= lo {
			hi = lo + 1
		}
		cmap.SetMin(lo)
		cmap.SetMax(hi)
	}

	proj.Points = make([]Point, 0, len(candidates))
	for _, i := range candidates {
		p := Point{X: xs[i], Y: ys[i], Row: i, Met: met(i)}
		if p.Met {
			p.Radius = opts.PassRadius
			p.Color = opts.PassColor
		} else {
			p.Radius = opts.FailRadius
			p.Color = opts.FailColor
		}
		if cmap != nil {
			c, err := cmap.At(hue[i])
			if err != nil {
				// Only out-of-range values fail; the range spans every candidate.
				return nil, fmt.Errorf("render: hue %g: %w", hue[i], err)
			}
			p.Color = c
		}
		proj.Points = append(proj.Points, p)
	}
	return proj, nil
}

func span(values []float64, rows []int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, i := range rows {
		lo = math.Min(lo, values[i])
		hi = math.Max(hi, values[i])
	}
	return lo, hi
}

func plottable(v float64, log bool) bool {
	if !finite(v) {
		return false
	}
	return !log || v > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
