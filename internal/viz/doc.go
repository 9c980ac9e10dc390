// Package viz provides the terminal UI for watching maze searches.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the Bubble Tea model driving a session one event per tick
//   - [Canvas]: colored block or half-block rendering of a grid
//   - Theme selection with 6 built-in color schemes
//
// # Key Bindings
//
//	b / d   - Start breadth-first / depth-first search
//	B / D   - Cancel the running search and switch strategy
//	s       - Switch to the other strategy
//	x       - Cancel the running search
//	c       - Clear visited and path marks
//	r       - Generate a new maze
//	+ / -   - Faster / slower animation
//	t       - Cycle color themes
//	m       - Toggle compact view
//	?       - Show help overlay
package viz
