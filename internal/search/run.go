package search

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/san-kum/mazelab/internal/grid"
)

type Run struct {
	mu        sync.Mutex
	id        string
	strategy  Strategy
	grid      *grid.Grid
	start     grid.Coord
	frontier  frontier
	visited   map[grid.Coord]bool
	parent    map[grid.Coord]grid.Coord
	status    Status
	path      []grid.Coord
	events    int
	steps     int
	metrics   []Metric
	observers []Observer
}

// NewRun prepares a traversal of a private snapshot of g from start. A start
// on a wall is accepted and exhausts on the first step without events.
func NewRun(strategy Strategy, g *grid.Grid, start grid.Coord) (*Run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if strategy != BreadthFirst && strategy != DepthFirst {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("start %v: %w", start, grid.ErrOutOfBounds)
	}

	open := g.OpenCells()
	r := &Run{
		id:       uuid.NewString(),
		strategy: strategy,
		grid:     g.Clone(),
		start:    start,
		frontier: strategy.newFrontier(open),
		visited:  make(map[grid.Coord]bool, open),
		parent:   make(map[grid.Coord]grid.Coord, open),
		status:   Idle,
	}
	if g.At(start).Open() {
		r.visited[start] = true
		r.frontier.push(start)
	}
	return r, nil
}

func (r *Run) ID() string         { return r.id }
func (r *Run) Strategy() Strategy { return r.strategy }
func (r *Run) Start() grid.Coord  { return r.start }

// AddMetric resets m and attaches it. Attach metrics before the first Step.
func (r *Run) AddMetric(m Metric) {
	m.Reset()
	r.metrics = append(r.metrics, m)
}

func (r *Run) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

func (r *Run) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Step pops one coordinate from the frontier. It returns a visit event and
// true, or false once the run has terminated as Found, Exhausted or Canceled.
func (r *Run) Step() (Event, bool) {
	r.mu.Lock()
	if r.status.Terminal() {
		r.mu.Unlock()
		return Event{}, false
	}
	r.status = Running

	if r.frontier.len() == 0 {
		r.status = Exhausted
		r.mu.Unlock()
		return Event{}, false
	}

	at := r.frontier.pop()
	r.steps++
	if r.grid.At(at) == grid.End {
		r.status = Found
		r.path = r.reconstruct(at)
		r.mu.Unlock()
		return Event{}, false
	}

	r.expand(at)
	r.events++
	ev := Event{At: at, Seq: r.events}
	pending := r.frontier.len()
	metrics, observers := r.metrics, r.observers
	r.mu.Unlock()

	for _, m := range metrics {
		m.Observe(ev, pending)
	}
	for _, o := range observers {
		o.OnStep(ev, pending)
	}
	return ev, true
}

func (r *Run) expand(at grid.Coord) {
	for _, d := range grid.Directions {
		n := at.Add(d)
		if !r.grid.InBounds(n) || !r.grid.At(n).Open() || r.visited[n] {
			continue
		}
		r.visited[n] = true
		r.parent[n] = at
		r.frontier.push(n)
	}
}

// reconstruct walks predecessor links from end back to the run's start.
func (r *Run) reconstruct(end grid.Coord) []grid.Coord {
	path := []grid.Coord{end}
	for at := end; at != r.start; {
		at = r.parent[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}

// Cancel terminates the run unless it already finished. Any step in flight
// completes its expansion; no later step emits an event.
func (r *Run) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status.Terminal() {
		return false
	}
	r.status = Canceled
	r.path = nil
	return true
}

// Events yields visit events until the run terminates. Breaking out of the
// loop leaves the run where it stopped.
func (r *Run) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := r.Step()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Walk steps the run to completion, calling fn for every event. A done
// context or an error from fn cancels the run.
func (r *Run) Walk(ctx context.Context, fn func(Event) error) (Result, error) {
	for {
		select {
		case <-ctx.Done():
			r.Cancel()
			return r.Result(), ctx.Err()
		default:
		}

		ev, ok := r.Step()
		if !ok {
			return r.Result(), nil
		}
		if fn == nil {
			continue
		}
		if err := fn(ev); err != nil {
			r.Cancel()
			return r.Result(), fmt.Errorf("search: step %d at %v: %w", ev.Seq, ev.At, err)
		}
	}
}

// Drain runs to a terminal state without observing events.
func (r *Run) Drain() Result {
	res, _ := r.Walk(context.Background(), nil)
	return res
}

func (r *Run) Result() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := Result{
		ID:       r.id,
		Strategy: r.strategy,
		Status:   r.status,
		Path:     slices.Clone(r.path),
		Visited:  r.events,
		Steps:    r.steps,
		Metrics:  make(map[string]float64, len(r.metrics)),
	}
	for _, m := range r.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res
}
