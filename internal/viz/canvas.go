package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mazelab/internal/grid"
)

// Upper half block: foreground paints the top half, background the bottom.
const halfBlock = "▀"

// Canvas draws a grid as colored terminal cells.
//
// In block mode every cell is two columns wide and each grid row takes one
// line. In compact mode two grid rows share a line through the half block,
// so tall mazes fit small terminals.
type Canvas struct {
	Theme   Theme
	Compact bool
}

func NewCanvas(theme Theme) *Canvas {
	return &Canvas{Theme: theme}
}

func (c *Canvas) Render(g *grid.Grid) string {
	if g == nil {
		return ""
	}
	if c.Compact {
		return c.renderCompact(g)
	}
	return c.renderBlocks(g)
}

// Size returns the rendered width and height in terminal cells.
func (c *Canvas) Size(g *grid.Grid) (w, h int) {
	if c.Compact {
		return g.Width(), (g.Height() + 1) / 2
	}
	return g.Width() * 2, g.Height()
}

func (c *Canvas) renderBlocks(g *grid.Grid) string {
	styles := make(map[grid.Cell]lipgloss.Style, 6)
	style := func(cell grid.Cell) lipgloss.Style {
		s, ok := styles[cell]
		if !ok {
			s = lipgloss.NewStyle().Background(c.Theme.Color(cell))
			if cell.Fixed() {
				s = s.Foreground(c.Theme.Path).Bold(true)
			}
			styles[cell] = s
		}
		return s
	}

	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		row := g.Row(r)
		// Runs of equal cells share one escape sequence.
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end] == row[start] {
				end++
			}
			b.WriteString(style(row[start]).Render(strings.Repeat(blockGlyph(row[start]), end-start)))
			start = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func blockGlyph(cell grid.Cell) string {
	if cell.Fixed() {
		return string(cell.Glyph()) + " "
	}
	return "  "
}

type cellPair struct {
	top, bottom grid.Cell
	half        bool
}

func (c *Canvas) renderCompact(g *grid.Grid) string {
	pairAt := func(r, col int) cellPair {
		p := cellPair{top: g.At(grid.Coord{Row: r, Col: col})}
		if r+1 < g.Height() {
			p.bottom = g.At(grid.Coord{Row: r + 1, Col: col})
		} else {
			p.half = true
		}
		return p
	}

	var b strings.Builder
	for r := 0; r < g.Height(); r += 2 {
		for start := 0; start < g.Width(); {
			p := pairAt(r, start)
			end := start + 1
			for end < g.Width() && pairAt(r, end) == p {
				end++
			}
			s := lipgloss.NewStyle().Foreground(c.Theme.Color(p.top))
			if !p.half {
				s = s.Background(c.Theme.Color(p.bottom))
			}
			b.WriteString(s.Render(strings.Repeat(halfBlock, end-start)))
			start = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}
