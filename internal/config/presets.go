package config

import (
	"sort"
	"time"

	"github.com/san-kum/mazelab/internal/search"
)

var Presets = map[string]*Config{
	"tiny": {
		Height: 5, Width: 5, Strategy: search.BreadthFirst,
		Interval: 250 * time.Millisecond, Theme: DefaultTheme, LogLevel: DefaultLogLevel,
	},
	"small": {
		Height: 11, Width: 11, Strategy: search.BreadthFirst,
		Interval: 150 * time.Millisecond, Theme: DefaultTheme, LogLevel: DefaultLogLevel,
	},
	"classic": {
		Height: DefaultSize, Width: DefaultSize, Strategy: search.BreadthFirst,
		Interval: DefaultInterval, Theme: DefaultTheme, LogLevel: DefaultLogLevel,
	},
	"wide": {
		Height: 15, Width: 41, Strategy: search.DepthFirst,
		Interval: 40 * time.Millisecond, Theme: "ocean", LogLevel: DefaultLogLevel,
	},
	"large": {
		Height: 31, Width: 61, Strategy: search.DepthFirst,
		Interval: 15 * time.Millisecond, Theme: "retro", LogLevel: DefaultLogLevel,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
