package render

import (
	"fmt"
	"io"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
)

// siTicks relabels the major ticks of another ticker with SI suffixes.
type siTicks struct {
	plot.Ticker
}

func (t siTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = si.Encode(ticks[i].Value)
		}
	}
	return ticks
}

// Plot builds the scatter plot of a projection.
func (p *Projection) Plot() (*plot.Plot, error) {
	opts := p.Options
	plt := plot.New()
	plt.Title.Text = opts.Title
	if plt.Title.Text == "" {
		plt.Title.Text = fmt.Sprintf("%s vs %s", opts.Y, opts.X)
		if opts.Hue != "" {
			plt.Title.Text += fmt.Sprintf(" (hue: %s, %s..%s)", opts.Hue, si.Encode(p.HueRange[0]), si.Encode(p.HueRange[1]))
		}
	}
	plt.X.Label.Text = opts.X
	plt.Y.Label.Text = opts.Y

	var xTicker, yTicker plot.Ticker = plot.DefaultTicks{}, plot.DefaultTicks{}
	if opts.LogX {
		plt.X.Scale = plot.LogScale{}
		xTicker = plot.LogTicks{Prec: -1}
	}
	if opts.LogY {
		plt.Y.Scale = plot.LogScale{}
		yTicker = plot.LogTicks{Prec: -1}
	}
	plt.X.Tick.Marker = siTicks{xTicker}
	plt.Y.Tick.Marker = siTicks{yTicker}
	plt.Add(plotter.NewGrid())

	if len(p.Points) == 0 {
		return plt, nil
	}

	xys := make(plotter.XYs, len(p.Points))
	for i, pt := range p.Points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  p.Points[i].Color,
			Radius: p.Points[i].Radius,
			Shape:  draw.CircleGlyph{},
		}
	}
	plt.Add(scatter)
	return plt, nil
}

// WriteTo renders the projection in the given format ("png", "svg", "pdf", ...).
func (p *Projection) WriteTo(w io.Writer, format string) error {
	plt, err := p.Plot()
	if err != nil {
		return err
	}
	wt, err := plt.WriterTo(p.Options.Width, p.Options.Height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save projects res and writes the plot to path; the format follows the
// file extension.
func Save(res *sizing.Result, opts Options, path string) (*Projection, error) {
	proj, err := Project(res, opts)
	if err != nil {
		return nil, err
	}
	plt, err := proj.Plot()
	if err != nil {
		return nil, err
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 6 * vg.Inch
	}
	if err := plt.Save(width, height, path); err != nil {
		return nil, fmt.Errorf("render: save %s: %w", filepath.Base(path), err)
	}
	return proj, nil
}
