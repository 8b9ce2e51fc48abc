// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotReturn draws the return probabilities against the step count together
// with the stationary value 1/4 and saves the figure; the format follows the
// file extension.
func plotReturn(path string, probs []float64) error {
	p := plot.New()
	p.Title.Text = "Tetrahedron walk: return to start"
	p.X.Label.Text = "steps"
	p.Y.Label.Text = "probability"
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(probs))
	for n, v := range probs {
		pts[n].X = float64(n)
		pts[n].Y = v
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("failed to build plot line: %w", err)
	}
	limit := plotter.NewFunction(func(float64) float64 { return 0.25 })
	limit.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), line, points, limit)
	p.Legend.Add("P(return)", line, points)
	p.Legend.Add("1/4", limit)

	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}

	return nil
}
