// Package anim applies search events to a display grid and paces them.
package anim

import (
	"context"
	"time"

	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/search"
)

// DefaultInterval is the delay between two visible steps.
const DefaultInterval = 100 * time.Millisecond

// Frame is what the driver hands to a renderer after each applied step.
type Frame struct {
	Grid   *grid.Grid
	Event  search.Event
	Status search.Status
	Done   bool
}

// Driver owns the display copy of the grid for the duration of one run.
type Driver struct {
	run     *search.Run
	display *grid.Grid
	applied int
}

// NewDriver starts from a cleared copy of base.
func NewDriver(run *search.Run, base *grid.Grid) *Driver {
	return &Driver{
		run:     run,
		display: base.Clear(),
	}
}

func (d *Driver) Display() *grid.Grid { return d.display }
func (d *Driver) Run() *search.Run    { return d.run }

// Applied is the number of events marked on the display so far.
func (d *Driver) Applied() int { return d.applied }

// Advance performs one search step and applies it. Once the run terminates it
// highlights the found path, if any, and returns a frame with Done set.
func (d *Driver) Advance() Frame {
	ev, ok := d.run.Step()
	if !ok {
		return d.finish()
	}
	// A cancel that lands between Step and here still drops the event.
	if d.run.Status() == search.Canceled {
		return d.finish()
	}
	d.display.MarkVisited(ev.At)
	d.applied++
	return Frame{Grid: d.display, Event: ev, Status: search.Running}
}

func (d *Driver) finish() Frame {
	res := d.run.Result()
	if res.Status == search.Found {
		d.display.Highlight(res.Path)
	}
	return Frame{Grid: d.display, Status: res.Status, Done: true}
}

// Play advances the run every interval until it terminates, calling onFrame
// after each step. A done context cancels the run.
func (d *Driver) Play(ctx context.Context, interval time.Duration, onFrame func(Frame)) (search.Result, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if onFrame == nil {
		onFrame = func(Frame) {}
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return d.stop(ctx, onFrame)
		default:
		}

		f := d.Advance()
		onFrame(f)
		if f.Done {
			return d.run.Result(), nil
		}

		select {
		case <-ctx.Done():
			return d.stop(ctx, onFrame)
		case <-ticker.C:
		}
	}
}

func (d *Driver) stop(ctx context.Context, onFrame func(Frame)) (search.Result, error) {
	d.run.Cancel()
	onFrame(d.finish())
	return d.run.Result(), ctx.Err()
}
