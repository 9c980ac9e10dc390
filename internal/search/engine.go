package search

import (
	"sync"

	"github.com/kataras/golog"
	"github.com/san-kum/mazelab/internal/grid"
)

// Engine allows one active run at a time.
type Engine struct {
	mu     sync.Mutex
	active *Run
	log    *golog.Logger
}

func NewEngine(logger *golog.Logger) *Engine {
	if logger == nil {
		logger = golog.Default
	}
	return &Engine{log: logger}
}

// Start begins a new run unless one is still active, in which case it
// returns (nil, false, nil) and leaves the active run untouched.
func (e *Engine) Start(strategy Strategy, g *grid.Grid, start grid.Coord) (*Run, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil && !e.active.Status().Terminal() {
		e.log.Debugf("search: ignoring %s start, run %s still %s", strategy, e.active.ID(), e.active.Status())
		return nil, false, nil
	}

	run, err := NewRun(strategy, g, start)
	if err != nil {
		return nil, false, err
	}
	e.active = run
	e.log.Debugf("search: started %s run %s from %v", strategy, run.ID(), start)
	return run, true, nil
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active != nil && !e.active.Status().Terminal()
}

// Active returns the most recent run, finished or not.
func (e *Engine) Active() *Run {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Cancel stops the active run. It reports whether a running run was canceled.
func (e *Engine) Cancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return false
	}
	if e.active.Cancel() {
		e.log.Debugf("search: canceled %s run %s", e.active.Strategy(), e.active.ID())
		return true
	}
	return false
}
