package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	logFile    string
	preset     string
	height     int
	width      int
	seed       int64
	animate    bool
	interval   string
	save       bool
	format     string
	plotHeight int
	svgFile    string
	svgScale   float64
	trials     int
)

// main registers the commands, launches the TUI when no subcommand is given
// and exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "mazelab",
		Short:        "maze generation and graph search lab",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mazelab", "data directory for run reports")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disable)")
	addMazeFlags(rootCmd)
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write TUI logs to this file")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal UI",
		RunE:  runTUI,
	}
	addMazeFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write TUI logs to this file")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "print a generated maze",
		Args:  cobra.NoArgs,
		RunE:  generateMaze,
	}
	addMazeFlags(generateCmd)
	addSVGFlags(generateCmd)

	solveCmd := &cobra.Command{
		Use:   "solve [bfs|dfs]",
		Short: "search a generated maze",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solveMaze,
	}
	addMazeFlags(solveCmd)
	solveCmd.Flags().BoolVar(&animate, "animate", false, "print every step")
	solveCmd.Flags().StringVar(&interval, "interval", "", "delay between animated steps (e.g. 50ms)")
	solveCmd.Flags().BoolVar(&save, "save", false, "save the run report to the data directory")
	solveCmd.Flags().StringVar(&format, "format", "text", "output format: text, json or csv")
	addSVGFlags(solveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run bfs and dfs on the same maze",
		Args:  cobra.NoArgs,
		RunE:  compareStrategies,
	}
	addMazeFlags(compareCmd)
	compareCmd.Flags().IntVar(&plotHeight, "plot-height", 10, "height of the frontier plot")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted scenario of searches",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&save, "save", false, "save every report to the data directory")
	batchCmd.Flags().StringVar(&format, "format", "text", "output format: text, json or csv")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "compare strategies over many generated mazes",
		Args:  cobra.NoArgs,
		RunE:  runTrials,
	}
	addMazeFlags(trialsCmd)
	trialsCmd.Flags().IntVar(&trials, "count", 50, "number of mazes")

	runsCmd := &cobra.Command{
		Use:   "runs [run_id]",
		Short: "list saved runs, or export one as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, generateCmd, solveCmd, compareCmd, batchCmd, trialsCmd, runsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&height, "height", 0, "maze height (rounded up to odd)")
	cmd.Flags().IntVar(&width, "width", 0, "maze width (rounded up to odd)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
}

func addSVGFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&svgFile, "svg", "", "also write the maze as an svg file")
	cmd.Flags().Float64Var(&svgScale, "svg-scale", 12, "svg pixels per cell")
}
