package search

import (
	"fmt"

	"github.com/san-kum/mazelab/internal/grid"
)

type Status int

const (
	Idle Status = iota
	Running
	Found
	Exhausted
	Canceled
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Canceled:
		return "canceled"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) Terminal() bool {
	return s == Found || s == Exhausted || s == Canceled
}

// Event asks the display to mark one coordinate visited. Seq counts events
// from 1 within a run.
type Event struct {
	At  grid.Coord
	Seq int
}

type Result struct {
	ID       string
	Strategy Strategy
	Status   Status
	// Path runs from the run's start coordinate to End, both included.
	// It is nil unless Status is Found.
	Path    []grid.Coord
	Visited int
	Steps   int
	Metrics map[string]float64
}

// PathLength is the number of edges on the found path.
func (r Result) PathLength() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

type Observer interface {
	OnStep(ev Event, frontier int)
}

type Metric interface {
	Name() string
	Observe(ev Event, frontier int)
	Value() float64
	Reset()
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event, frontier int)

func (f ObserverFunc) OnStep(ev Event, frontier int) { f(ev, frontier) }
