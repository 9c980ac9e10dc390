package grid

import "fmt"

// MinSize is the smallest height or width for which Start and End are
// well-defined.
const MinSize = 5

type Cell uint8

const (
	Wall Cell = iota
	Path
	Start
	End
	Visited
	PathFound
)

var cellNames = [...]string{"wall", "path", "start", "end", "visited", "path-found"}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Glyph returns the single-character ASCII form used by String and Parse.
func (c Cell) Glyph() rune {
	switch c {
	case Wall:
		return '#'
	case Path:
		return ' '
	case Start:
		return 'S'
	case End:
		return 'E'
	case Visited:
		return '.'
	case PathFound:
		return '*'
	}
	return '?'
}

// Open reports whether a search may step onto the cell.
func (c Cell) Open() bool { return c != Wall }

// Fixed reports whether the cell must survive visited marking and highlighting.
func (c Cell) Fixed() bool { return c == Start || c == End }

func cellFromGlyph(r rune) (Cell, bool) {
	switch r {
	case '#':
		return Wall, true
	case ' ':
		return Path, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	case '.':
		return Visited, true
	case '*':
		return PathFound, true
	}
	return Wall, false
}

type Coord struct {
	Row, Col int
}

func (c Coord) Add(d Direction) Coord {
	return Coord{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Step moves n cells in direction d.
func (c Coord) Step(d Direction, n int) Coord {
	return Coord{Row: c.Row + d.DRow*n, Col: c.Col + d.DCol*n}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o share an edge.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	return dr*dr+dc*dc == 1
}

type Direction struct {
	DRow, DCol int
}

// Directions is the neighbor expansion order: right, down, left, up.
// Search tie-breaking and the deterministic carve both depend on it.
var Directions = [4]Direction{
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 0, DCol: -1},
	{DRow: -1, DCol: 0},
}

var (
	Right = Directions[0]
	Down  = Directions[1]
	Left  = Directions[2]
	Up    = Directions[3]
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return fmt.Sprintf("dir(%d,%d)", d.DRow, d.DCol)
}
