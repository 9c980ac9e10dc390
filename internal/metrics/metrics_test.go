package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/search"
)

func feed(m search.Metric, frontiers ...int) {
	for i, f := range frontiers {
		m.Observe(search.Event{Seq: i + 1}, f)
	}
}

func TestVisitCount(t *testing.T) {
	m := NewVisitCount()
	feed(m, 1, 2, 3)
	if m.Value() != 3 {
		t.Errorf("expected 3 visits, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestCoverage(t *testing.T) {
	m := NewCoverage(8)
	feed(m, 0, 0)
	if math.Abs(m.Value()-0.25) > 1e-12 {
		t.Errorf("expected coverage 0.25, got %f", m.Value())
	}
	if NewCoverage(0).Value() != 0 {
		t.Error("coverage of an empty grid should be 0")
	}
}

func TestFrontierPeakAndMean(t *testing.T) {
	peak, mean := NewFrontierPeak(), NewFrontierMean()
	feed(peak, 1, 4, 2, 1)
	feed(mean, 1, 4, 2, 1)

	if peak.Value() != 4 {
		t.Errorf("expected peak 4, got %f", peak.Value())
	}
	if mean.Value() != 2 {
		t.Errorf("expected mean 2, got %f", mean.Value())
	}
	mean.Reset()
	if mean.Value() != 0 {
		t.Error("expected zero mean after reset")
	}
}

func TestFrontierTrace(t *testing.T) {
	tr := NewFrontierTrace()
	for i, f := range []int{3, 1, 4, 1, 5} {
		tr.OnStep(search.Event{Seq: i + 1}, f)
	}
	if got := tr.Values(); len(got) != 5 || got[4] != 5 {
		t.Errorf("unexpected trace %v", got)
	}
	if got := tr.Tail(2); len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Errorf("unexpected tail %v", got)
	}
}

func TestAttachOnRun(t *testing.T) {
	g, err := grid.Parse([]string{
		"#####",
		"S  ##",
		"## ##",
		"## E#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}
	run, _ := search.NewRun(search.BreadthFirst, g, grid.Coord{Row: 1, Col: 0})
	Attach(run, g)
	res := run.Drain()

	if res.Metrics["visited"] != 5 {
		t.Errorf("expected 5 visited, got %f", res.Metrics["visited"])
	}
	if want := 5.0 / 6.0; math.Abs(res.Metrics["coverage"]-want) > 1e-12 {
		t.Errorf("expected coverage %f, got %f", want, res.Metrics["coverage"])
	}
	if res.Metrics["frontier_peak"] != 1 {
		t.Errorf("expected frontier peak 1 in a corridor, got %f", res.Metrics["frontier_peak"])
	}
}
