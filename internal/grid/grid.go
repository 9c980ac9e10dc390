package grid

import (
	"fmt"
	"strings"
)

type Grid struct {
	height, width int
	cells         [][]Cell
}

// New returns a height×width grid with every cell set to Wall.
func New(height, width int) (*Grid, error) {
	if height < MinSize || width < MinSize {
		return nil, fmt.Errorf("%w: %dx%d (min %d)", ErrTooSmall, height, width, MinSize)
	}
	g := &Grid{height: height, width: width, cells: make([][]Cell, height)}
	for i := range g.cells {
		g.cells[i] = make([]Cell, width)
	}
	return g, nil
}

// Parse builds a grid from rows of glyphs as produced by String.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	width := len([]rune(rows[0]))
	g, err := New(len(rows), width)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformed, r, len(runes), width)
		}
		for c, ch := range runes {
			cell, ok := cellFromGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at %v", ErrMalformed, ch, Coord{r, c})
			}
			g.cells[r][c] = cell
		}
	}
	return g, nil
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.height && c.Col < g.width
}

// At returns the cell at c. Out-of-bounds coordinates read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row][c.Col]
}

func (g *Grid) Set(c Coord, cell Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.height, g.width)
	}
	g.cells[c.Row][c.Col] = cell
	return nil
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []Cell {
	row := make([]Cell, g.width)
	copy(row, g.cells[r])
	return row
}

func (g *Grid) Clone() *Grid {
	c := &Grid{height: g.height, width: g.width, cells: make([][]Cell, g.height)}
	for i, row := range g.cells {
		c.cells[i] = make([]Cell, g.width)
		copy(c.cells[i], row)
	}
	return c
}

// Clear returns a copy with every Visited and PathFound cell reset to Path.
// Wall, Start and End are left untouched.
func (g *Grid) Clear() *Grid {
	c := g.Clone()
	for _, row := range c.cells {
		for j, cell := range row {
			if cell == Visited || cell == PathFound {
				row[j] = Path
			}
		}
	}
	return c
}

// MarkVisited sets c to Visited unless it is a Wall, Start or End cell.
// It reports whether the cell changed.
func (g *Grid) MarkVisited(c Coord) bool {
	cell := g.At(c)
	if cell == Wall || cell.Fixed() || cell == Visited {
		return false
	}
	g.cells[c.Row][c.Col] = Visited
	return true
}

// Highlight marks every coordinate of path except Start and End as PathFound.
func (g *Grid) Highlight(path []Coord) {
	for _, c := range path {
		cell := g.At(c)
		if cell == Wall || cell.Fixed() {
			continue
		}
		g.cells[c.Row][c.Col] = PathFound
	}
}

func (g *Grid) Count(cell Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}
	return n
}

// Find returns every coordinate holding cell, in row-major order.
func (g *Grid) Find(cell Cell) []Coord {
	var out []Coord
	for r, row := range g.cells {
		for c, v := range row {
			if v == cell {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// OpenCells counts every non-Wall cell.
func (g *Grid) OpenCells() int {
	return g.height*g.width - g.Count(Wall)
}

// Neighbors returns the in-bounds open neighbors of c in direction-table order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if g.InBounds(n) && g.At(n).Open() {
			out = append(out, n)
		}
	}
	return out
}

func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.height != o.height || g.width != o.width {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// Lines renders the grid as one glyph string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	var b strings.Builder
	for i, row := range g.cells {
		b.Reset()
		for _, c := range row {
			b.WriteRune(c.Glyph())
		}
		lines[i] = b.String()
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n") + "\n"
}
