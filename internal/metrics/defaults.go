package metrics

import (
	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/search"
)

// Default returns the metric set attached to every run on g.
func Default(g *grid.Grid) []search.Metric {
	return []search.Metric{
		NewVisitCount(),
		NewCoverage(g.OpenCells()),
		NewFrontierPeak(),
		NewFrontierMean(),
	}
}

// Attach adds the default metrics to run.
func Attach(run *search.Run, g *grid.Grid) {
	for _, m := range Default(g) {
		run.AddMetric(m)
	}
}
