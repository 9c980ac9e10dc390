package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/search"
)

// Report summarizes one finished run. It records how a maze was searched,
// not the maze itself; the seed is kept so the run can be repeated.
type Report struct {
	ID         string             `json:"id"`
	Strategy   string             `json:"strategy"`
	Status     string             `json:"status"`
	Height     int                `json:"height"`
	Width      int                `json:"width"`
	Seed       int64              `json:"seed"`
	Visited    int                `json:"visited"`
	Steps      int                `json:"steps"`
	PathLength int                `json:"path_length"`
	Path       [][2]int           `json:"path,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
	Timestamp  time.Time          `json:"timestamp"`
}

func FromResult(res search.Result, g *grid.Grid, seed int64) Report {
	r := Report{
		ID:         res.ID,
		Strategy:   res.Strategy.String(),
		Status:     res.Status.String(),
		Height:     g.Height(),
		Width:      g.Width(),
		Seed:       seed,
		Visited:    res.Visited,
		Steps:      res.Steps,
		PathLength: res.PathLength(),
		Metrics:    res.Metrics,
		Timestamp:  time.Now().UTC(),
	}
	for _, c := range res.Path {
		r.Path = append(r.Path, [2]int{c.Row, c.Col})
	}
	if r.Metrics == nil {
		r.Metrics = map[string]float64{}
	}
	return r
}

func WriteJSON(w io.Writer, reports ...Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

var csvHeader = []string{"id", "strategy", "status", "height", "width", "seed", "visited", "steps", "path_length"}

// WriteCSV writes one row per report; metric columns follow the fixed
// columns in name order.
func WriteCSV(w io.Writer, reports []Report) error {
	names := metricNames(reports)
	cw := csv.NewWriter(w)

	header := append(append([]string{}, csvHeader...), names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		row := []string{
			r.ID,
			r.Strategy,
			r.Status,
			strconv.Itoa(r.Height),
			strconv.Itoa(r.Width),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Visited),
			strconv.Itoa(r.Steps),
			strconv.Itoa(r.PathLength),
		}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(r.Metrics[name], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func metricNames(reports []Report) []string {
	seen := make(map[string]bool)
	for _, r := range reports {
		for name := range r.Metrics {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
