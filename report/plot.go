// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/householder/hilbert"
)

// ResidualFloor is the smallest residual plotted; exact zeros are clamped to
// it before taking log10.
const ResidualFloor = 1e-18

// ErrNothingToPlot is returned when no result carries a finite residual.
var ErrNothingToPlot = errors.New("report: nothing to plot")

// PlotOptions controls the chart geometry and title.
type PlotOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultPlotOptions returns a 6in×4in chart titled for the Hilbert sweep.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Title:  "Householder QR on Hilbert matrices",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// WritePlot saves a line chart of log10(err1) and log10(err2) against n.
// The image format follows the file extension (.png, .svg, .pdf, ...).
// Sizes with a non-finite residual are skipped in that series.
func WritePlot(path string, results []hilbert.Result, opts PlotOptions) error {
	err1, err2 := residualSeries(results)
	if len(err1) == 0 && len(err2) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "n"
	p.Y.Label.Text = "log10(residual)"
	p.Add(plotter.NewGrid())

	var series []interface{}
	if len(err1) > 0 {
		series = append(series, "err1", err1)
	}
	if len(err2) > 0 {
		series = append(series, "err2", err2)
	}
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return fmt.Errorf("failed to add series: %w", err)
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}

	return nil
}

// residualSeries extracts (n, log10 residual) points for both residuals.
func residualSeries(results []hilbert.Result) (err1, err2 plotter.XYs) {
	for _, r := range results {
		if y, ok := log10Clamped(r.DecompositionResidual); ok {
			err1 = append(err1, plotter.XY{X: float64(r.N), Y: y})
		}
		if y, ok := log10Clamped(r.SolutionResidual); ok {
			err2 = append(err2, plotter.XY{X: float64(r.N), Y: y})
		}
	}

	return err1, err2
}

func log10Clamped(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return math.Log10(math.Max(v, ResidualFloor)), true
}
