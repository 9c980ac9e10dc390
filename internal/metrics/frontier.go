package metrics

import (
	"github.com/san-kum/mazelab/internal/search"
)

type FrontierPeak struct {
	name string
	peak int
}

func NewFrontierPeak() *FrontierPeak {
	return &FrontierPeak{
		name: "frontier_peak",
	}
}

func (f *FrontierPeak) Name() string {
	return f.name
}

func (f *FrontierPeak) Observe(ev search.Event, frontier int) {
	if frontier > f.peak {
		f.peak = frontier
	}
}

func (f *FrontierPeak) Value() float64 {
	return float64(f.peak)
}

func (f *FrontierPeak) Reset() {
	f.peak = 0
}

type FrontierMean struct {
	name    string
	sum     float64
	samples int
}

func NewFrontierMean() *FrontierMean {
	return &FrontierMean{
		name: "frontier_mean",
	}
}

func (f *FrontierMean) Name() string {
	return f.name
}

func (f *FrontierMean) Observe(ev search.Event, frontier int) {
	f.sum += float64(frontier)
	f.samples++
}

func (f *FrontierMean) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.sum / float64(f.samples)
}

func (f *FrontierMean) Reset() {
	f.sum = 0
	f.samples = 0
}

// FrontierTrace records the frontier size after every event, for plotting.
type FrontierTrace struct {
	sizes []float64
}

func NewFrontierTrace() *FrontierTrace {
	return &FrontierTrace{sizes: make([]float64, 0, 256)}
}

func (f *FrontierTrace) OnStep(ev search.Event, frontier int) {
	f.sizes = append(f.sizes, float64(frontier))
}

func (f *FrontierTrace) Values() []float64 {
	out := make([]float64, len(f.sizes))
	copy(out, f.sizes)
	return out
}

// Tail returns at most the last n samples, or all of them when n <= 0.
func (f *FrontierTrace) Tail(n int) []float64 {
	if n <= 0 || len(f.sizes) <= n {
		return f.Values()
	}
	out := make([]float64, n)
	copy(out, f.sizes[len(f.sizes)-n:])
	return out
}
