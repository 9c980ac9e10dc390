// Package search runs breadth-first and depth-first search over a grid as a
// step-at-a-time, cancelable sequence of visit events.
//
// The package defines:
//
//   - [Strategy]: tagged variant selecting the frontier discipline
//     (FIFO for [BreadthFirst], LIFO for [DepthFirst])
//   - [Run]: one traversal; each [Run.Step] pops one coordinate and either
//     emits a visit [Event] or terminates the run
//   - [Engine]: holds at most one active run and ignores start requests
//     while it is busy
//   - [Observer] and [Metric]: hooks called after every emitted event
//
// # Example
//
//	run, _ := search.NewRun(search.BreadthFirst, g, maze.StartPos())
//	for ev := range run.Events() {
//	    display.MarkVisited(ev.At)
//	}
//	res := run.Result()
//
// # Thread Safety
//
// A Run is driven from one goroutine. [Run.Cancel] may be called from any
// goroutine and is observed before the next step.
package search
