// Package viz renders advisory plots of the per-sample mutation-burden
// distribution. Nothing here feeds back into the downsampling computation.
package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BurdenHistogram saves a histogram of sample totals to filename. When
// threshold > 0 the downsampling fence is drawn as a vertical red line.
func BurdenHistogram(totals []float64, threshold float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Sample Mutation Burden"
	p.X.Label.Text = "Total mutations"
	p.Y.Label.Text = "Samples"

	vals := make(plotter.Values, len(totals))
	copy(vals, totals)
	h, err := plotter.NewHist(vals, 20)
	if err != nil {
		return err
	}
	p.Add(h)

	if threshold > 0 {
		top := 0.0
		for _, bin := range h.Bins {
			if bin.Weight > top {
				top = bin.Weight
			}
		}
		l, err := plotter.NewLine(plotter.XYs{
			{X: threshold, Y: 0},
			{X: threshold, Y: top},
		})
		if err != nil {
			return err
		}
		l.Color = color.RGBA{R: 255, A: 255}
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add("threshold", l)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// BurdenBoxPlot saves a box plot of sample totals to filename. Points drawn
// above the upper whisker are exactly the samples the downsampler rescales
// under an automatically derived threshold.
func BurdenBoxPlot(totals []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Sample Mutation Burden"
	p.Y.Label.Text = "Total mutations"

	vals := make(plotter.Values, len(totals))
	copy(vals, totals)
	b, err := plotter.NewBoxPlot(vg.Points(40), 0, vals)
	if err != nil {
		return err
	}
	p.Add(b)
	p.NominalX("cohort")
	return p.Save(3*vg.Inch, 5*vg.Inch, filename)
}
