// SPDX-License-Identifier: MIT
// Package diag renders optional load-balance diagnostics for a partition
// plan. Nothing here is on spmv.Run's hot path; it exists so benchmarks
// and tests can visually confirm that a mergepath.Plan tiles work evenly
// across workers.
package diag

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/mergespmv/mergepath"
)

// PlotLoadBalance renders one bar per worker, the height of which is that
// worker's merge-list slice length (mergepath.Plan.SliceLength), and
// saves it as a PNG at path.
func PlotLoadBalance(plan mergepath.Plan, title, path string) error {
	workers := plan.Workers()
	values := make(plotter.Values, workers)
	for t := 0; t < workers; t++ {
		values[t] = float64(plan.SliceLength(t))
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "merge-list items"
	p.X.Label.Text = "worker"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("diag: new bar chart: %w", err)
	}
	p.Add(bars)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("diag: save %q: %w", path, err)
	}

	return nil
}
