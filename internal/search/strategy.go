package search

import (
	"fmt"
	"strings"

	"github.com/san-kum/mazelab/internal/grid"
)

type Strategy int

const (
	BreadthFirst Strategy = iota
	DepthFirst
)

// Strategies lists every strategy in display order.
var Strategies = []Strategy{BreadthFirst, DepthFirst}

func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Title is the human-readable name shown in the UI.
func (s Strategy) Title() string {
	switch s {
	case BreadthFirst:
		return "Breadth-First Search"
	case DepthFirst:
		return "Depth-First Search"
	}
	return s.String()
}

// Other returns the opposite strategy.
func (s Strategy) Other() Strategy {
	if s == BreadthFirst {
		return DepthFirst
	}
	return BreadthFirst
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "dfs", "depth", "depth-first", "depthfirst":
		return DepthFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Strategy) newFrontier(capacity int) frontier {
	if s == DepthFirst {
		return &stack{items: make([]grid.Coord, 0, capacity)}
	}
	return &queue{items: make([]grid.Coord, 0, capacity)}
}
