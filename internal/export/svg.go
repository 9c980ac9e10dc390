// Package export writes grids to image formats.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/mazelab/internal/grid"
)

// Palette maps cell states to SVG fill colors.
type Palette map[grid.Cell]string

var DefaultPalette = Palette{
	grid.Wall:      "#3a3a5a",
	grid.Path:      "#0a0a0a",
	grid.Start:     "#00ff88",
	grid.End:       "#ff4444",
	grid.Visited:   "#0077be",
	grid.PathFound: "#ffd700",
}

func (p Palette) fill(c grid.Cell) string {
	if color, ok := p[c]; ok {
		return color
	}
	return DefaultPalette[c]
}

// GridToSVG renders every cell as a scale×scale square.
func GridToSVG(g *grid.Grid, pal Palette, scale float64) string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	writeCells(&sb, g, pal, scale)
	sb.WriteString("</svg>")
	return sb.String()
}

// PathToSVG renders the grid with a line through the centers of path.
func PathToSVG(g *grid.Grid, path []grid.Coord, pal Palette, scale float64, strokeColor string) string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	writeCells(&sb, g, pal, scale)

	if len(path) >= 2 {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round" stroke-linejoin="round" d="M`,
			strokeColor, scale*0.3))
		for i, c := range path {
			x := (float64(c.Col) + 0.5) * scale
			y := (float64(c.Row) + 0.5) * scale
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeCells(sb *strings.Builder, g *grid.Grid, pal Palette, scale float64) {
	if pal == nil {
		pal = DefaultPalette
	}
	width := float64(g.Width()) * scale
	height := float64(g.Height()) * scale

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, pal.fill(grid.Path)))

	// Path cells are the background; other runs become one rect each.
	for r := 0; r < g.Height(); r++ {
		row := g.Row(r)
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end] == row[start] {
				end++
			}
			if row[start] != grid.Path {
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(start)*scale, float64(r)*scale, float64(end-start)*scale, scale, pal.fill(row[start])))
			}
			start = end
		}
	}
}
