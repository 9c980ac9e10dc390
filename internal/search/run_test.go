package search

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/maze"
)

var corridorLayout = []string{
	"#####",
	"S  ##",
	"## ##",
	"## E#",
	"#####",
}

var roomLayout = []string{
	"#######",
	"S     #",
	"# ### #",
	"#     #",
	"# # # #",
	"#     E",
	"#######",
}

func mustParse(t *testing.T, rows []string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return g
}

func collect(r *Run) []grid.Coord {
	var out []grid.Coord
	for ev := range r.Events() {
		out = append(out, ev.At)
	}
	return out
}

func TestCorridor_StrategiesAgree(t *testing.T) {
	g := mustParse(t, corridorLayout)
	start := grid.Coord{Row: 1, Col: 0}

	wantVisits := []grid.Coord{{1, 0}, {1, 1}, {1, 2}, {2, 2}, {3, 2}}
	wantPath := []grid.Coord{{1, 0}, {1, 1}, {1, 2}, {2, 2}, {3, 2}, {3, 3}}

	for _, s := range Strategies {
		t.Run(s.String(), func(t *testing.T) {
			run, err := NewRun(s, g, start)
			if err != nil {
				t.Fatalf("new run failed: %v", err)
			}
			visits := collect(run)
			res := run.Result()

			if res.Status != Found {
				t.Fatalf("expected found, got %v", res.Status)
			}
			if len(visits) != len(wantVisits) {
				t.Fatalf("expected %d visits, got %v", len(wantVisits), visits)
			}
			for i := range wantVisits {
				if visits[i] != wantVisits[i] {
					t.Errorf("visit %d: expected %v, got %v", i, wantVisits[i], visits[i])
				}
			}
			if len(res.Path) != len(wantPath) {
				t.Fatalf("expected path %v, got %v", wantPath, res.Path)
			}
			for i := range wantPath {
				if res.Path[i] != wantPath[i] {
					t.Errorf("path %d: expected %v, got %v", i, wantPath[i], res.Path[i])
				}
			}
			if res.PathLength() != 5 {
				t.Errorf("expected 5 edges, got %d", res.PathLength())
			}
		})
	}
}

func TestBreadthFirst_Shortest(t *testing.T) {
	layouts := map[string]*grid.Grid{"room": mustParse(t, roomLayout)}
	for seed := int64(1); seed <= 5; seed++ {
		g, _ := maze.New(maze.NewRandomShuffler(seed)).Generate(15, 21)
		layouts["maze"+string(rune('0'+seed))] = g
	}

	for name, g := range layouts {
		t.Run(name, func(t *testing.T) {
			start := g.Find(grid.Start)[0]
			end := g.Find(grid.End)[0]
			run, _ := NewRun(BreadthFirst, g, start)
			res := run.Drain()

			if res.Status != Found {
				t.Fatalf("expected found, got %v", res.Status)
			}
			checkPath(t, g, res.Path, start, end)
			if want := shortest(g, start, end); res.PathLength() != want {
				t.Errorf("expected shortest length %d, got %d", want, res.PathLength())
			}
		})
	}
}

func TestDepthFirst_ValidPath(t *testing.T) {
	g := mustParse(t, roomLayout)
	start := grid.Coord{Row: 1, Col: 0}
	end := grid.Coord{Row: 5, Col: 6}

	run, _ := NewRun(DepthFirst, g, start)
	res := run.Drain()
	if res.Status != Found {
		t.Fatalf("expected found, got %v", res.Status)
	}
	checkPath(t, g, res.Path, start, end)
	if res.PathLength() < shortest(g, start, end) {
		t.Error("path shorter than the shortest distance")
	}
}

func TestRun_NeverEmitsEnd(t *testing.T) {
	g := mustParse(t, roomLayout)
	for _, s := range Strategies {
		run, _ := NewRun(s, g, grid.Coord{Row: 1, Col: 0})
		for _, c := range collect(run) {
			if g.At(c) == grid.End {
				t.Errorf("%v emitted a visit for the end cell", s)
			}
		}
	}
}

func TestRun_Exhausted(t *testing.T) {
	g := mustParse(t, []string{
		"#####",
		"S  ##",
		"#####",
		"## E#",
		"#####",
	})
	run, _ := NewRun(BreadthFirst, g, grid.Coord{Row: 1, Col: 0})
	visits := collect(run)
	res := run.Result()

	if res.Status != Exhausted {
		t.Errorf("expected exhausted, got %v", res.Status)
	}
	if len(visits) != 3 {
		t.Errorf("expected 3 visits, got %d", len(visits))
	}
	if res.Path != nil {
		t.Errorf("expected no path, got %v", res.Path)
	}
}

func TestRun_WallStart(t *testing.T) {
	g := mustParse(t, corridorLayout)
	run, err := NewRun(DepthFirst, g, grid.Coord{Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("new run failed: %v", err)
	}
	if _, ok := run.Step(); ok {
		t.Error("wall start emitted an event")
	}
	if run.Status() != Exhausted {
		t.Errorf("expected exhausted, got %v", run.Status())
	}
}

func TestRun_InvalidInput(t *testing.T) {
	g := mustParse(t, corridorLayout)

	if _, err := NewRun(BreadthFirst, g, grid.Coord{Row: 9, Col: 0}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := NewRun(BreadthFirst, nil, grid.Coord{}); !errors.Is(err, ErrNilGrid) {
		t.Errorf("expected ErrNilGrid, got %v", err)
	}
	if _, err := NewRun(Strategy(7), g, grid.Coord{Row: 1, Col: 0}); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestRun_StartOnEnd(t *testing.T) {
	g := mustParse(t, corridorLayout)
	end := grid.Coord{Row: 3, Col: 3}
	run, _ := NewRun(BreadthFirst, g, end)
	res := run.Drain()
	if res.Status != Found || len(res.Path) != 1 || res.Path[0] != end {
		t.Errorf("expected immediate find at %v, got %v %v", end, res.Status, res.Path)
	}
	if res.Visited != 0 {
		t.Errorf("expected no visits, got %d", res.Visited)
	}
}

func TestRun_CancelMidRun(t *testing.T) {
	g, _ := maze.New(maze.NewRandomShuffler(1)).Generate(21, 21)

	for _, s := range Strategies {
		t.Run(s.String(), func(t *testing.T) {
			run, _ := NewRun(s, g, maze.StartPos())
			for i := 0; i < 3; i++ {
				if _, ok := run.Step(); !ok {
					t.Fatalf("run ended after %d steps", i)
				}
			}
			if !run.Cancel() {
				t.Fatal("cancel reported no effect")
			}
			if run.Cancel() {
				t.Error("second cancel should be a no-op")
			}
			if rest := collect(run); len(rest) != 0 {
				t.Errorf("expected no events after cancel, got %d", len(rest))
			}

			res := run.Result()
			if res.Status != Canceled {
				t.Errorf("expected canceled, got %v", res.Status)
			}
			if res.Path != nil {
				t.Error("canceled run returned a path")
			}
			if res.Visited != 3 {
				t.Errorf("expected 3 visits, got %d", res.Visited)
			}
		})
	}
}

func TestRun_CancelFromObserver(t *testing.T) {
	g, _ := maze.New(maze.NewRandomShuffler(2)).Generate(21, 21)
	run, _ := NewRun(BreadthFirst, g, maze.StartPos())
	run.AddObserver(ObserverFunc(func(ev Event, _ int) {
		if ev.Seq == 5 {
			run.Cancel()
		}
	}))

	visits := collect(run)
	if len(visits) != 5 {
		t.Errorf("expected 5 visits, got %d", len(visits))
	}
	if run.Status() != Canceled {
		t.Errorf("expected canceled, got %v", run.Status())
	}
}

func TestRun_CancelAfterFinish(t *testing.T) {
	g := mustParse(t, corridorLayout)
	run, _ := NewRun(BreadthFirst, g, grid.Coord{Row: 1, Col: 0})
	run.Drain()
	if run.Cancel() {
		t.Error("cancel should not affect a finished run")
	}
	if run.Status() != Found {
		t.Errorf("expected found, got %v", run.Status())
	}
}

func TestRun_WalkContextCanceled(t *testing.T) {
	g, _ := maze.New(maze.NewRandomShuffler(3)).Generate(21, 21)
	run, _ := NewRun(DepthFirst, g, maze.StartPos())

	ctx, cancel := context.WithCancel(context.Background())
	seen := 0
	res, err := run.Walk(ctx, func(Event) error {
		seen++
		if seen == 4 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.Status != Canceled || res.Visited != 4 {
		t.Errorf("expected canceled after 4 visits, got %v after %d", res.Status, res.Visited)
	}
}

func TestRun_WalkCallbackError(t *testing.T) {
	g := mustParse(t, corridorLayout)
	run, _ := NewRun(BreadthFirst, g, grid.Coord{Row: 1, Col: 0})
	boom := errors.New("boom")

	res, err := run.Walk(context.Background(), func(Event) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped callback error, got %v", err)
	}
	if res.Status != Canceled {
		t.Errorf("expected canceled, got %v", res.Status)
	}
}

func TestRun_SnapshotIsolation(t *testing.T) {
	g := mustParse(t, corridorLayout)
	run, _ := NewRun(BreadthFirst, g, grid.Coord{Row: 1, Col: 0})
	g.Set(grid.Coord{Row: 2, Col: 2}, grid.Wall)

	if res := run.Drain(); res.Status != Found {
		t.Errorf("run observed a wall added after it started: %v", res.Status)
	}
}

type countMetric struct {
	n, peak int
}

func (c *countMetric) Name() string { return "count" }
func (c *countMetric) Observe(_ Event, frontier int) {
	c.n++
	if frontier > c.peak {
		c.peak = frontier
	}
}
func (c *countMetric) Value() float64 { return float64(c.n) }
func (c *countMetric) Reset()         { c.n, c.peak = 0, 0 }

func TestRun_Metrics(t *testing.T) {
	g := mustParse(t, roomLayout)
	m := &countMetric{n: 99}
	run, _ := NewRun(BreadthFirst, g, grid.Coord{Row: 1, Col: 0})
	run.AddMetric(m)
	res := run.Drain()

	if got := res.Metrics["count"]; int(got) != res.Visited {
		t.Errorf("metric saw %v events, run emitted %d", got, res.Visited)
	}
	if m.peak == 0 {
		t.Error("metric never saw a non-empty frontier")
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"bfs", BreadthFirst},
		{"BFS", BreadthFirst},
		{"breadth-first", BreadthFirst},
		{"dfs", DepthFirst},
		{" depth ", DepthFirst},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseStrategy("astar"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func checkPath(t *testing.T, g *grid.Grid, path []grid.Coord, start, end grid.Coord) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != start || path[len(path)-1] != end {
		t.Errorf("path runs %v to %v, want %v to %v", path[0], path[len(path)-1], start, end)
	}
	seen := make(map[grid.Coord]bool)
	for i, c := range path {
		if !g.At(c).Open() {
			t.Errorf("path crosses wall at %v", c)
		}
		if seen[c] {
			t.Errorf("path revisits %v", c)
		}
		seen[c] = true
		if i > 0 && !path[i-1].Adjacent(c) {
			t.Errorf("path jumps from %v to %v", path[i-1], c)
		}
	}
}

func shortest(g *grid.Grid, from, to grid.Coord) int {
	dist := map[grid.Coord]int{from: 0}
	q := []grid.Coord{from}
	for len(q) > 0 {
		c := q[0]
		q = q[1:]
		if c == to {
			return dist[c]
		}
		for _, n := range g.Neighbors(c) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[c] + 1
				q = append(q, n)
			}
		}
	}
	return -1
}
