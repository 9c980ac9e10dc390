// Package automation runs scripted and repeated searches without the TUI.
package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/kataras/golog"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/metrics"
	"github.com/san-kum/mazelab/internal/report"
	"github.com/san-kum/mazelab/internal/search"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario defines a scripted sequence of searches
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Seed        int64          `yaml:"seed"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single search in a scenario. Zero fields fall back to the
// preset, then to the defaults.
type ScenarioStep struct {
	Preset   string `yaml:"preset"`
	Height   int    `yaml:"height"`
	Width    int    `yaml:"width"`
	Seed     int64  `yaml:"seed"`
	Strategy string `yaml:"strategy"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	return &scenario, nil
}

// Config resolves the step into a validated configuration.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Height != 0 {
		cfg.Height = s.Height
	}
	if s.Width != 0 {
		cfg.Width = s.Width
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Strategy != "" {
		strategy, err := search.ParseStrategy(s.Strategy)
		if err != nil {
			return nil, err
		}
		cfg.Strategy = strategy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RunScenario executes all steps in a scenario. Steps without a seed draw one
// from the scenario seed, so a seeded scenario is reproducible.
func RunScenario(ctx context.Context, scenario *Scenario, log *golog.Logger) ([]report.Report, error) {
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	if log == nil {
		log = golog.Default
	}
	rng := newRNG(scenario.Seed)
	results := make([]report.Report, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		seed := cfg.Seed
		if seed == 0 {
			seed = rng.Int63()
		}

		log.Infof("running step %d/%d: %s on %dx%d maze", i+1, len(scenario.Steps), cfg.Strategy, cfg.Height, cfg.Width)

		g, err := maze.FromSeed(seed, cfg.Height, cfg.Width)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		res, err := solve(ctx, cfg.Strategy, g)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, report.FromResult(res, g, seed))
	}

	return results, nil
}

func solve(ctx context.Context, strategy search.Strategy, g *grid.Grid) (search.Result, error) {
	run, err := search.NewRun(strategy, g, maze.StartPos())
	if err != nil {
		return search.Result{}, err
	}
	metrics.Attach(run, g)
	return run.Walk(ctx, nil)
}

// TrialConfig defines repeated searches over freshly generated mazes
type TrialConfig struct {
	Height    int
	Width     int
	NumTrials int
	Seed      int64
}

// TrialResult holds both strategies' results on one maze
type TrialResult struct {
	TrialID int
	Seed    int64
	Results map[search.Strategy]search.Result
}

// RunTrials generates NumTrials mazes and runs every strategy on each. Seeds
// are drawn up front, so results do not depend on scheduling.
func RunTrials(ctx context.Context, cfg TrialConfig, log *golog.Logger) ([]TrialResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, fmt.Errorf("automation: trial count %d must be positive", cfg.NumTrials)
	}
	if log == nil {
		log = golog.Default
	}
	rng := newRNG(cfg.Seed)
	seeds := make([]int64, cfg.NumTrials)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make([]TrialResult, cfg.NumTrials)
	errs := make([]error, cfg.NumTrials)
	sem := make(chan struct{}, runtime.NumCPU())

	var wg sync.WaitGroup
	for i := 0; i < cfg.NumTrials; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx], errs[idx] = runTrial(ctx, idx, seeds[idx], cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("trials: %d mazes of %dx%d complete", cfg.NumTrials, cfg.Height, cfg.Width)
	return results, nil
}

func runTrial(ctx context.Context, idx int, seed int64, cfg TrialConfig) (TrialResult, error) {
	tr := TrialResult{TrialID: idx, Seed: seed, Results: make(map[search.Strategy]search.Result, len(search.Strategies))}

	g, err := maze.FromSeed(seed, cfg.Height, cfg.Width)
	if err != nil {
		return tr, err
	}
	for _, strategy := range search.Strategies {
		res, err := solve(ctx, strategy, g)
		if err != nil {
			return tr, fmt.Errorf("trial %d: %w", idx, err)
		}
		tr.Results[strategy] = res
	}
	return tr, nil
}

// TrialSummary aggregates trial results per strategy.
type TrialSummary struct {
	Trials      int
	MeanVisited map[search.Strategy]float64
	MeanPath    map[search.Strategy]float64
	// ShortestDFS counts mazes where depth-first found a path as short as
	// breadth-first's.
	ShortestDFS int
}

// Summarize computes summary statistics from trial results
func Summarize(results []TrialResult) TrialSummary {
	sum := TrialSummary{
		Trials:      len(results),
		MeanVisited: make(map[search.Strategy]float64, len(search.Strategies)),
		MeanPath:    make(map[search.Strategy]float64, len(search.Strategies)),
	}
	if len(results) == 0 {
		return sum
	}

	for _, r := range results {
		for strategy, res := range r.Results {
			sum.MeanVisited[strategy] += float64(res.Visited)
			sum.MeanPath[strategy] += float64(res.PathLength())
		}
		bfs, dfs := r.Results[search.BreadthFirst], r.Results[search.DepthFirst]
		if bfs.Status == search.Found && dfs.Status == search.Found && dfs.PathLength() == bfs.PathLength() {
			sum.ShortestDFS++
		}
	}
	n := float64(len(results))
	for strategy := range sum.MeanVisited {
		sum.MeanVisited[strategy] /= n
		sum.MeanPath[strategy] /= n
	}
	return sum
}
