package metrics

import (
	"github.com/san-kum/mazelab/internal/search"
)

type VisitCount struct {
	name  string
	count int
}

func NewVisitCount() *VisitCount {
	return &VisitCount{
		name: "visited",
	}
}

func (v *VisitCount) Name() string {
	return v.name
}

func (v *VisitCount) Observe(ev search.Event, frontier int) {
	v.count++
}

func (v *VisitCount) Value() float64 {
	return float64(v.count)
}

func (v *VisitCount) Reset() {
	v.count = 0
}

// Coverage is the fraction of open cells a run visited.
type Coverage struct {
	name  string
	open  int
	count int
}

func NewCoverage(openCells int) *Coverage {
	return &Coverage{
		name: "coverage",
		open: openCells,
	}
}

func (c *Coverage) Name() string {
	return c.name
}

func (c *Coverage) Observe(ev search.Event, frontier int) {
	c.count++
}

func (c *Coverage) Value() float64 {
	if c.open == 0 {
		return 0
	}
	return float64(c.count) / float64(c.open)
}

func (c *Coverage) Reset() {
	c.count = 0
}
