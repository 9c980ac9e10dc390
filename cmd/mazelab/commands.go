package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/kataras/golog"
	"github.com/san-kum/mazelab/internal/anim"
	"github.com/san-kum/mazelab/internal/automation"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/export"
	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/metrics"
	"github.com/san-kum/mazelab/internal/report"
	"github.com/san-kum/mazelab/internal/search"
	"github.com/san-kum/mazelab/internal/viz"
	"github.com/spf13/cobra"
)

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("interval") {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", interval, err)
		}
		cfg.Interval = d
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string, out io.Writer) *golog.Logger {
	return golog.New().SetOutput(out).SetLevel(level)
}

// generateGrid builds the configured maze and returns it with the seed used.
func generateGrid(cfg *config.Config) (*grid.Grid, int64, error) {
	s := cfg.Seed
	if !cfg.Seeded() {
		s = time.Now().UnixNano()
	}
	g, err := maze.FromSeed(s, cfg.Height, cfg.Width)
	if err != nil {
		return nil, 0, fmt.Errorf("generate %dx%d maze: %w", cfg.Height, cfg.Width, err)
	}
	return g, s, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to an explicit file.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return viz.RunInteractive(cfg, viz.Options{
		Store:  report.NewStore(dataDir),
		Logger: newLogger(cfg.LogLevel, out),
	})
}

func generateMaze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel, os.Stderr)

	g, s, err := generateGrid(cfg)
	if err != nil {
		return err
	}
	log.Infof("generated %dx%d maze (seed %d)", g.Height(), g.Width(), s)
	fmt.Print(g)
	return writeSVG(export.GridToSVG(g, themePalette(cfg.Theme), svgScale), log)
}

func themePalette(name string) export.Palette {
	theme := viz.GetTheme(name)
	pal := make(export.Palette, len(export.DefaultPalette))
	for cell := range export.DefaultPalette {
		pal[cell] = string(theme.Color(cell))
	}
	return pal
}

func writeSVG(svg string, log *golog.Logger) error {
	if svgFile == "" {
		return nil
	}
	if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	log.Infof("wrote %s", svgFile)
	return nil
}

func solveMaze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	strategy := cfg.Strategy
	if len(args) > 0 {
		if strategy, err = search.ParseStrategy(args[0]); err != nil {
			return err
		}
	}
	if format != "text" && format != "json" && format != "csv" {
		return fmt.Errorf("unknown format: %s (available: text, json, csv)", format)
	}
	log := newLogger(cfg.LogLevel, os.Stderr)

	g, s, err := generateGrid(cfg)
	if err != nil {
		return err
	}
	run, err := search.NewRun(strategy, g, maze.StartPos())
	if err != nil {
		return err
	}
	metrics.Attach(run, g)
	driver := anim.NewDriver(run, g)

	var res search.Result
	if animate {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		canvas := viz.NewCanvas(viz.GetTheme(cfg.Theme))
		res, err = driver.Play(ctx, cfg.Interval, func(f anim.Frame) {
			fmt.Print("\033[H\033[2J" + canvas.Render(f.Grid))
			fmt.Printf("%s  step %d  %s\n", strategy.Title(), f.Event.Seq, f.Status)
		})
		if err != nil {
			log.Warnf("search interrupted: %v", err)
		}
	} else {
		for f := driver.Advance(); !f.Done; f = driver.Advance() {
		}
		res = run.Result()
	}
	log.Infof("%s run %s %s after %d steps", res.Strategy, res.ID, res.Status, res.Steps)

	r := report.FromResult(res, g, s)
	svg := export.PathToSVG(driver.Display(), res.Path, themePalette(cfg.Theme), svgScale, string(viz.GetTheme(cfg.Theme).Accent))
	if err := writeSVG(svg, log); err != nil {
		return err
	}
	if save {
		st := report.NewStore(dataDir)
		path, err := st.Save(r)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		log.Infof("saved report to %s", path)
	}

	switch format {
	case "json":
		return report.WriteJSON(os.Stdout, r)
	case "csv":
		return report.WriteCSV(os.Stdout, []report.Report{r})
	}

	fmt.Print(driver.Display())
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", r.ID)
	fmt.Fprintf(w, "strategy\t%s\n", strategy.Title())
	fmt.Fprintf(w, "status\t%s\n", r.Status)
	fmt.Fprintf(w, "size\t%dx%d\n", r.Height, r.Width)
	fmt.Fprintf(w, "seed\t%d\n", r.Seed)
	fmt.Fprintf(w, "visited\t%d\n", r.Visited)
	fmt.Fprintf(w, "path length\t%d\n", r.PathLength)
	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.3f\n", name, r.Metrics[name])
	}
	return w.Flush()
}

func compareStrategies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel, os.Stderr)

	g, s, err := generateGrid(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("comparing strategies on a %dx%d maze (seed %d)\n\n", g.Height(), g.Width(), s)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tSTATUS\tVISITED\tPATH\tPEAK\tMEAN\tCOVERAGE\tTIME")

	traces := make([][]float64, 0, len(search.Strategies))
	for _, strategy := range search.Strategies {
		run, err := search.NewRun(strategy, g, maze.StartPos())
		if err != nil {
			return err
		}
		metrics.Attach(run, g)
		trace := metrics.NewFrontierTrace()
		run.AddObserver(trace)

		start := time.Now()
		res := run.Drain()
		elapsed := time.Since(start)
		log.Debugf("%s run %s %s", strategy, res.ID, res.Status)

		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f\t%.1f\t%.1f%%\t%.2fms\n",
			strategy,
			res.Status,
			res.Visited,
			res.PathLength(),
			res.Metrics["frontier_peak"],
			res.Metrics["frontier_mean"],
			res.Metrics["coverage"]*100,
			float64(elapsed.Microseconds())/1000,
		)
		if values := trace.Values(); len(values) > 0 {
			traces = append(traces, values)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(traces) == len(search.Strategies) {
		chart := asciigraph.PlotMany(traces,
			asciigraph.Height(plotHeight),
			asciigraph.Width(60),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
			asciigraph.Caption("frontier size per step (bfs blue, dfs red)"),
		)
		fmt.Println()
		fmt.Println(chart)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	if format != "text" && format != "json" && format != "csv" {
		return fmt.Errorf("unknown format: %s (available: text, json, csv)", format)
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	log := newLogger(cliLogLevel(cmd), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, runErr := automation.RunScenario(ctx, scenario, log)
	if save {
		st := report.NewStore(dataDir)
		for _, r := range reports {
			if _, err := st.Save(r); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
		}
	}

	switch format {
	case "json":
		if err := report.WriteJSON(os.Stdout, reports...); err != nil {
			return err
		}
	case "csv":
		if err := report.WriteCSV(os.Stdout, reports); err != nil {
			return err
		}
	default:
		if scenario.Name != "" {
			fmt.Printf("%s: %s\n\n", scenario.Name, scenario.Description)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tSTRATEGY\tSTATUS\tSIZE\tSEED\tVISITED\tPATH")
		for i, r := range reports {
			fmt.Fprintf(w, "%d\t%s\t%s\t%dx%d\t%d\t%d\t%d\n", i+1, r.Strategy, r.Status, r.Height, r.Width, r.Seed, r.Visited, r.PathLength)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return runErr
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunTrials(ctx, automation.TrialConfig{
		Height:    cfg.Height,
		Width:     cfg.Width,
		NumTrials: trials,
		Seed:      cfg.Seed,
	}, log)
	if err != nil {
		return err
	}

	sum := automation.Summarize(results)
	fmt.Printf("%d mazes of %dx%d\n\n", sum.Trials, maze.NormalizeSize(cfg.Height), maze.NormalizeSize(cfg.Width))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tMEAN VISITED\tMEAN PATH")
	for _, strategy := range search.Strategies {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", strategy, sum.MeanVisited[strategy], sum.MeanPath[strategy])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\ndfs matched the shortest path on %d/%d mazes\n", sum.ShortestDFS, sum.Trials)
	return nil
}

// cliLogLevel is the level for commands that take no config file.
func cliLogLevel(cmd *cobra.Command) string {
	if cmd.Flags().Changed("log-level") {
		return logLevel
	}
	return config.DefaultLogLevel
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := report.NewStore(dataDir)

	if len(args) == 1 {
		r, err := st.Load(args[0])
		if err != nil {
			return err
		}
		return report.WriteJSON(os.Stdout, *r)
	}

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTRATEGY\tSTATUS\tSIZE\tSEED\tVISITED\tPATH\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%d\t%s\n",
			shortID(r.ID),
			r.Strategy,
			r.Status,
			r.Height, r.Width,
			r.Seed,
			r.Visited,
			r.PathLength,
			r.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tSTRATEGY\tINTERVAL\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%s\n", name, p.Height, p.Width, p.Strategy, p.Interval, p.Theme)
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
