// Package session wires maze generation, search and animation together and
// owns the run/cancel state for one interactive user.
package session

import (
	"fmt"
	"time"

	"github.com/kataras/golog"
	"github.com/san-kum/mazelab/internal/anim"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/metrics"
	"github.com/san-kum/mazelab/internal/report"
	"github.com/san-kum/mazelab/internal/search"
)

type Session struct {
	cfg      config.Config
	log      *golog.Logger
	engine   *search.Engine
	seeds    func() int64
	onFinish func(report.Report)

	maze     *grid.Grid
	seed     int64
	display  *grid.Grid
	driver   *anim.Driver
	trace    *metrics.FrontierTrace
	finished bool
	last     *report.Report
}

type Option func(*Session)

func WithLogger(l *golog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeeds replaces the seed source used for every new maze.
func WithSeeds(next func() int64) Option {
	return func(s *Session) {
		if next != nil {
			s.seeds = next
		}
	}
}

// WithOnFinish registers a callback for every run that reaches a terminal state.
func WithOnFinish(fn func(report.Report)) Option {
	return func(s *Session) { s.onFinish = fn }
}

// New validates cfg and generates the first maze.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   *cfg,
		log:   golog.Default,
		seeds: defaultSeeds(cfg),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = search.NewEngine(s.log)

	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// defaultSeeds counts up from a configured seed, or follows the clock.
func defaultSeeds(cfg *config.Config) func() int64 {
	if !cfg.Seeded() {
		return func() int64 { return time.Now().UnixNano() }
	}
	next := cfg.Seed
	return func() int64 {
		seed := next
		next++
		return seed
	}
}

// Refresh cancels any run and replaces the maze with a freshly generated one.
func (s *Session) Refresh() error {
	s.Cancel()

	seed := s.seeds()
	g, err := maze.FromSeed(seed, s.cfg.Height, s.cfg.Width)
	if err != nil {
		return fmt.Errorf("generate %dx%d maze: %w", s.cfg.Height, s.cfg.Width, err)
	}

	s.maze, s.seed = g, seed
	s.display = g.Clone()
	s.driver, s.trace, s.finished = nil, nil, false
	s.log.Infof("generated %dx%d maze (seed %d)", g.Height(), g.Width(), seed)
	return nil
}

// Search starts a run with strategy from the maze start. It is a no-op
// returning false while another run is active.
func (s *Session) Search(strategy search.Strategy) (bool, error) {
	run, ok, err := s.engine.Start(strategy, s.maze, maze.StartPos())
	if err != nil || !ok {
		return false, err
	}

	metrics.Attach(run, s.maze)
	s.trace = metrics.NewFrontierTrace()
	run.AddObserver(s.trace)

	s.driver = anim.NewDriver(run, s.maze)
	s.display = s.driver.Display()
	s.finished = false
	return true, nil
}

// Switch cancels the active run, if any, and starts strategy in its place.
func (s *Session) Switch(strategy search.Strategy) (bool, error) {
	s.Cancel()
	return s.Search(strategy)
}

// Cancel stops the active run and settles it as Canceled.
func (s *Session) Cancel() bool {
	if !s.engine.Cancel() {
		return false
	}
	s.Tick()
	return true
}

// Clear cancels any run and wipes visited and path marks from the display.
func (s *Session) Clear() {
	s.Cancel()
	s.display = s.maze.Clear()
	s.driver, s.finished = nil, false
}

// Tick advances the active run by one event. With no run, or once the run
// has finished, it returns a Done frame of the current display.
func (s *Session) Tick() anim.Frame {
	if s.driver == nil {
		return anim.Frame{Grid: s.display, Status: search.Idle, Done: true}
	}
	if s.finished {
		return anim.Frame{Grid: s.display, Status: s.driver.Run().Status(), Done: true}
	}

	f := s.driver.Advance()
	if f.Done {
		s.settle()
	}
	return f
}

func (s *Session) settle() {
	s.finished = true
	res := s.driver.Run().Result()
	r := report.FromResult(res, s.maze, s.seed)
	s.last = &r
	s.log.Infof("%s run %s %s: %d visited, path length %d", res.Strategy, res.ID, res.Status, res.Visited, res.PathLength())
	if s.onFinish != nil {
		s.onFinish(r)
	}
}

func (s *Session) Running() bool { return s.engine.Running() }

func (s *Session) Status() search.Status {
	if s.driver == nil {
		return search.Idle
	}
	return s.driver.Run().Status()
}

// Strategy returns the strategy of the current or last run.
func (s *Session) Strategy() (search.Strategy, bool) {
	if s.driver == nil {
		return 0, false
	}
	return s.driver.Run().Strategy(), true
}

func (s *Session) Display() *grid.Grid { return s.display }
func (s *Session) Maze() *grid.Grid    { return s.maze }
func (s *Session) Seed() int64         { return s.seed }

// Visited is the number of events applied by the current run.
func (s *Session) Visited() int {
	if s.driver == nil {
		return 0
	}
	return s.driver.Applied()
}

// Last returns the report of the most recently finished run.
func (s *Session) Last() *report.Report { return s.last }

// Trace returns at most n recent frontier sizes of the current run; n <= 0 means all.
func (s *Session) Trace(n int) []float64 {
	if s.trace == nil {
		return nil
	}
	return s.trace.Tail(n)
}

func (s *Session) Config() config.Config { return s.cfg }
