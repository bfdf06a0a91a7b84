package describe

import (
	"io"

	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotClassDistribution draws d as a bar chart and writes it to w. format is
// any format gonum/plot supports ("png", "svg", "pdf", ...).
func PlotClassDistribution(d *Distribution, w io.Writer, format string) error {
	p := plot.New()
	p.Title.Text = d.Name + " distribution"
	p.Y.Label.Text = "count"

	values := make(plotter.Values, len(d.Counts))
	for i, c := range d.Counts {
		values[i] = float64(c)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return errors.Wrap(err, "PlotClassDistribution")
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(d.Labels...)

	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, format)
	if err != nil {
		return errors.Wrap(err, "PlotClassDistribution")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "PlotClassDistribution")
	}
	return nil
}
